package tax

import "testing"

func TestSSOverpayment(t *testing.T) {
	statutoryMax := 142800 * 0.062 // 8853.60

	tests := []struct {
		name     string
		withheld float64
		want     float64
	}{
		{"under the max", 5000, 0},
		{"exactly at the max", statutoryMax, 0},
		{"over the max", statutoryMax + 1200.50, 1200.50},
		{"zero withheld", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SSOverpayment(tt.withheld, statutoryMax)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("SSOverpayment(%v) = %v, want %v", tt.withheld, got, tt.want)
			}
			if got < 0 {
				t.Errorf("SSOverpayment must never be negative, got %v", got)
			}
		})
	}
}
