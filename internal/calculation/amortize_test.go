package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/nwadvisor/networth-advisor/internal/domain"
)

func TestAccrueAndPay(t *testing.T) {
	tests := []struct {
		name              string
		balance           float64
		monthlyRate       float64
		payment           float64
		expectedInterest  float64
		expectedPrincipal float64
		expectedBalance   float64
	}{
		{
			name:              "Normal amortizing payment",
			balance:           10000,
			monthlyRate:       0.01, // 12% annual
			payment:           300,
			expectedInterest:  100,
			expectedPrincipal: 200,
			expectedBalance:   9800,
		},
		{
			// The payment is swallowed whole; the full interest charge
			// lands on the balance.
			name:              "Payment below interest grows the balance by full interest",
			balance:           10000,
			monthlyRate:       0.02, // 24% annual
			payment:           10,
			expectedInterest:  200,
			expectedPrincipal: 0,
			expectedBalance:   10200,
		},
		{
			name:              "Final payment clamps at zero",
			balance:           100,
			monthlyRate:       0.01,
			payment:           500,
			expectedInterest:  1,
			expectedPrincipal: 100,
			expectedBalance:   0,
		},
		{
			name:              "Zero-rate debt pays straight principal",
			balance:           1000,
			monthlyRate:       0,
			payment:           250,
			expectedInterest:  0,
			expectedPrincipal: 250,
			expectedBalance:   750,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interest, principal, balance := AccrueAndPay(
				decimal.NewFromFloat(tt.balance),
				decimal.NewFromFloat(tt.monthlyRate),
				decimal.NewFromFloat(tt.payment))

			assert.True(t, interest.Equal(decimal.NewFromFloat(tt.expectedInterest)),
				"interest: got %s", interest)
			assert.True(t, principal.Equal(decimal.NewFromFloat(tt.expectedPrincipal)),
				"principal: got %s", principal)
			assert.True(t, balance.Equal(decimal.NewFromFloat(tt.expectedBalance)),
				"balance: got %s", balance)
		})
	}
}

func TestAccrueAndPayNeverReturnsNegativeBalance(t *testing.T) {
	_, _, balance := AccrueAndPay(
		decimal.NewFromInt(50), decimal.NewFromFloat(0.01), decimal.NewFromInt(10000))
	assert.False(t, balance.IsNegative())
	assert.True(t, balance.IsZero())
}

func TestMonthsToPayoff(t *testing.T) {
	tests := []struct {
		name      string
		liability domain.Liability
		expected  int
	}{
		{
			name: "Already paid off",
			liability: domain.Liability{
				Name:           "Paid Card",
				CurrentBalance: decimal.Zero,
				InterestRate:   decimal.NewFromInt(20),
				MonthlyPayment: decimal.NewFromInt(100),
			},
			expected: 0,
		},
		{
			name: "Zero-rate loan divides evenly",
			liability: domain.Liability{
				Name:           "Family Loan",
				CurrentBalance: decimal.NewFromInt(1200),
				InterestRate:   decimal.Zero,
				MonthlyPayment: decimal.NewFromInt(100),
			},
			expected: 12,
		},
		{
			name: "Non-amortizing debt never pays off",
			liability: domain.Liability{
				Name:           "Underwater Card",
				CurrentBalance: decimal.NewFromInt(10000),
				InterestRate:   decimal.NewFromInt(24), // ~$200/month interest
				MonthlyPayment: decimal.NewFromInt(10),
			},
			expected: domain.MonthsNever,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthsToPayoff(tt.liability))
		})
	}
}

func TestMonthsToPayoffNormalLoan(t *testing.T) {
	l := domain.Liability{
		Name:           "Car Loan",
		CurrentBalance: decimal.NewFromInt(10000),
		InterestRate:   decimal.NewFromInt(6),
		MonthlyPayment: decimal.NewFromInt(300),
	}
	months := MonthsToPayoff(l)
	assert.Greater(t, months, 0)
	assert.Less(t, months, 48)
}

func TestInterestRemaining(t *testing.T) {
	t.Run("Non-amortizing has no finite total", func(t *testing.T) {
		outcome := InterestRemaining(domain.Liability{
			Name:           "Underwater Card",
			CurrentBalance: decimal.NewFromInt(10000),
			InterestRate:   decimal.NewFromInt(24),
			MonthlyPayment: decimal.NewFromInt(10),
		})
		assert.False(t, outcome.Amortizing())
	})

	t.Run("Amortizing debt has positive finite total", func(t *testing.T) {
		outcome := InterestRemaining(domain.Liability{
			Name:           "Car Loan",
			CurrentBalance: decimal.NewFromInt(10000),
			InterestRate:   decimal.NewFromInt(6),
			MonthlyPayment: decimal.NewFromInt(300),
		})
		assert.True(t, outcome.Amortizing())
		assert.True(t, outcome.Total().GreaterThan(decimal.Zero))
		// A 6% loan paid at $300/month stays well under $1000 of interest.
		assert.True(t, outcome.Total().LessThan(decimal.NewFromInt(1000)))
	})

	t.Run("Paid-off debt owes nothing", func(t *testing.T) {
		outcome := InterestRemaining(domain.Liability{
			Name:           "Paid Card",
			CurrentBalance: decimal.Zero,
			InterestRate:   decimal.NewFromInt(20),
			MonthlyPayment: decimal.NewFromInt(100),
		})
		assert.True(t, outcome.Amortizing())
		assert.True(t, outcome.Total().IsZero())
	})
}
