package finance

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/finance-tracker/planner/internal/domain/error"
)

func TestFutureValue(t *testing.T) {
	tests := []struct {
		name         string
		presentValue float64
		contribution float64
		rate         float64
		periods      int
		expected     float64
	}{
		{
			name:         "one year at 8 percent",
			presentValue: 10000,
			contribution: 500,
			rate:         8,
			periods:      12,
			expected:     17096.457832042084,
		},
		{
			name:         "zero rate accumulates contributions",
			presentValue: 1000,
			contribution: 250,
			rate:         0,
			periods:      10,
			expected:     3500,
		},
		{
			name:         "zero periods returns present value",
			presentValue: 1234.5,
			contribution: 999,
			rate:         12,
			periods:      0,
			expected:     1234.5,
		},
		{
			name:         "single period contribution at start earns interest",
			presentValue: 0,
			contribution: 100,
			rate:         12,
			periods:      1,
			expected:     101,
		},
		{
			name:         "present value only",
			presentValue: 1000,
			contribution: 0,
			rate:         12,
			periods:      2,
			expected:     1020.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FutureValue(tt.presentValue, tt.contribution, tt.rate, tt.periods)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.expected, got, 1e-6)
		})
	}
}

func TestFutureValue_InvalidArguments(t *testing.T) {
	tests := []struct {
		name         string
		rate         float64
		periods      int
		expectedCode domainerror.FinanceErrorCode
	}{
		{name: "negative rate", rate: -1, periods: 12, expectedCode: domainerror.ErrCodeNegativeRate},
		{name: "negative periods", rate: 5, periods: -1, expectedCode: domainerror.ErrCodeNegativePeriods},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FutureValue(1000, 100, tt.rate, tt.periods)
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			var finErr *domainerror.FinanceError
			if !errors.As(err, &finErr) {
				t.Fatalf("expected FinanceError, got %T", err)
			}
			if finErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, finErr.Code)
			}
			if !errors.Is(err, domainerror.ErrInvalidArgument) {
				t.Error("expected error to wrap ErrInvalidArgument")
			}
		})
	}
}

func TestFutureValue_ZeroRateIdentity(t *testing.T) {
	for _, pv := range []float64{0, 1, 500, 12345.67} {
		for _, c := range []float64{0, 10, 333.33} {
			for _, n := range []int{0, 1, 7, 360} {
				got, err := FutureValue(pv, c, 0, n)
				require.NoError(t, err)
				assert.InDelta(t, pv+c*float64(n), got, 1e-9, "pv=%v c=%v n=%v", pv, c, n)
			}
		}
	}
}

func TestFutureValue_ZeroPeriodsIdentity(t *testing.T) {
	for _, rate := range []float64{0, 0.5, 8, 100} {
		for _, c := range []float64{0, 100, 5000} {
			got, err := FutureValue(4200, c, rate, 0)
			require.NoError(t, err)
			if got != 4200 {
				t.Errorf("expected 4200, got %v (rate=%v contribution=%v)", got, rate, c)
			}
		}
	}
}

func TestFutureValue_Monotonic(t *testing.T) {
	for _, rate := range []float64{0, 3, 8, 15} {
		prev := math.Inf(-1)
		for n := 0; n <= 120; n += 6 {
			got, err := FutureValue(1000, 200, rate, n)
			require.NoError(t, err)
			if got < prev {
				t.Errorf("rate %v: value decreased from %v to %v at n=%d", rate, prev, got, n)
			}
			prev = got
		}

		prev = math.Inf(-1)
		for c := 0.0; c <= 1000; c += 100 {
			got, err := FutureValue(1000, c, rate, 24)
			require.NoError(t, err)
			if got < prev {
				t.Errorf("rate %v: value decreased from %v to %v at contribution=%v", rate, prev, got, c)
			}
			prev = got
		}
	}
}
