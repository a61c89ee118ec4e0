package attendance

import (
	"testing"

	"github.com/ems-suite/ems-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkDayRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     MarkDayRequest
		wantErr bool
	}{
		{
			name: "valid",
			req: MarkDayRequest{
				Date:     "2026-03-10",
				Statuses: map[string]string{"emp-1": StatusPresent, "emp-2": StatusLate},
			},
		},
		{
			name:    "missing date",
			req:     MarkDayRequest{Statuses: map[string]string{"emp-1": StatusPresent}},
			wantErr: true,
		},
		{
			name:    "malformed date",
			req:     MarkDayRequest{Date: "10/03/2026", Statuses: map[string]string{"emp-1": StatusPresent}},
			wantErr: true,
		},
		{
			name:    "empty statuses",
			req:     MarkDayRequest{Date: "2026-03-10", Statuses: map[string]string{}},
			wantErr: true,
		},
		{
			name:    "on leave is not markable",
			req:     MarkDayRequest{Date: "2026-03-10", Statuses: map[string]string{"emp-1": StatusOnLeave}},
			wantErr: true,
		},
		{
			name:    "unknown status",
			req:     MarkDayRequest{Date: "2026-03-10", Statuses: map[string]string{"emp-1": "Sick"}},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				require.Error(t, err)
				var verrs validator.ValidationErrors
				assert.ErrorAs(t, err, &verrs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
