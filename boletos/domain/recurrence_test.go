package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/boletos/model"
)

func TestApplyStatusToggle(t *testing.T) {
	testCases := []struct {
		name            string
		status          model.BoletoStatus
		dueDate         string
		isRecurring     bool
		expectedStatus  model.BoletoStatus
		expectedDueDate string
		expectedError   string
	}{
		{
			name:            "pending_non_recurring_becomes_paid",
			status:          model.BoletoStatusPending,
			dueDate:         "2024-03-15",
			isRecurring:     false,
			expectedStatus:  model.BoletoStatusPaid,
			expectedDueDate: "2024-03-15",
		},
		{
			name:            "paid_non_recurring_back_to_pending",
			status:          model.BoletoStatusPaid,
			dueDate:         "2024-03-15",
			isRecurring:     false,
			expectedStatus:  model.BoletoStatusPending,
			expectedDueDate: "2024-03-15",
		},
		{
			name:            "pending_recurring_rolls_forward",
			status:          model.BoletoStatusPending,
			dueDate:         "2024-03-15",
			isRecurring:     true,
			expectedStatus:  model.BoletoStatusPending,
			expectedDueDate: "2024-04-15",
		},
		{
			name:            "recurring_jan_31_clamps_to_leap_feb_29",
			status:          model.BoletoStatusPending,
			dueDate:         "2024-01-31",
			isRecurring:     true,
			expectedStatus:  model.BoletoStatusPending,
			expectedDueDate: "2024-02-29",
		},
		{
			name:            "recurring_jan_31_clamps_to_feb_28",
			status:          model.BoletoStatusPending,
			dueDate:         "2023-01-31",
			isRecurring:     true,
			expectedStatus:  model.BoletoStatusPending,
			expectedDueDate: "2023-02-28",
		},
		{
			name:            "recurring_leap_feb_29_to_mar_29",
			status:          model.BoletoStatusPending,
			dueDate:         "2024-02-29",
			isRecurring:     true,
			expectedStatus:  model.BoletoStatusPending,
			expectedDueDate: "2024-03-29",
		},
		{
			name:            "recurring_dec_rolls_into_next_year",
			status:          model.BoletoStatusPending,
			dueDate:         "2024-12-31",
			isRecurring:     true,
			expectedStatus:  model.BoletoStatusPending,
			expectedDueDate: "2025-01-31",
		},
		{
			name:            "overdue_non_recurring_becomes_paid",
			status:          model.BoletoStatusOverdue,
			dueDate:         "2024-02-01",
			isRecurring:     false,
			expectedStatus:  model.BoletoStatusPaid,
			expectedDueDate: "2024-02-01",
		},
		{
			name:          "invalid_due_date_rejected",
			status:        model.BoletoStatusPending,
			dueDate:       "31/01/2024",
			isRecurring:   true,
			expectedError: "invalid due date",
		},
		{
			name:          "unknown_status_rejected",
			status:        model.BoletoStatus("archived"),
			dueDate:       "2024-03-15",
			expectedError: "invalid boleto status",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := &model.Boleto{
				Status:      tc.status,
				DueDate:     tc.dueDate,
				IsRecurring: tc.isRecurring,
			}

			result, err := ApplyStatusToggle(b)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, result.Status)
			assert.Equal(t, tc.expectedDueDate, result.DueDate)
		})
	}
}

// Toggling a non-recurring boleto twice must return it to where it started.
func TestApplyStatusToggle_Involution(t *testing.T) {
	b := &model.Boleto{
		Status:      model.BoletoStatusPending,
		DueDate:     "2024-06-10",
		IsRecurring: false,
	}

	first, err := ApplyStatusToggle(b)
	require.NoError(t, err)
	assert.Equal(t, model.BoletoStatusPaid, first.Status)

	b.Status = first.Status
	b.DueDate = first.DueDate

	second, err := ApplyStatusToggle(b)
	require.NoError(t, err)
	assert.Equal(t, model.BoletoStatusPending, second.Status)
	assert.Equal(t, "2024-06-10", second.DueDate)
}

func TestAdvanceOneMonth(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"2024-01-15", "2024-02-15"},
		{"2024-01-31", "2024-02-29"},
		{"2023-01-31", "2023-02-28"},
		{"2024-02-29", "2024-03-29"},
		{"2024-03-31", "2024-04-30"},
		{"2024-08-31", "2024-09-30"},
		{"2024-10-31", "2024-11-30"},
		{"2024-11-30", "2024-12-30"},
		{"2024-12-15", "2025-01-15"},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := AdvanceOneMonth(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
