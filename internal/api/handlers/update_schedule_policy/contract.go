package update_schedule_policy

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/policy/models"
)

type PolicyService interface {
	Save(ctx context.Context, req *models.SavePolicyRequest) (*models.PolicyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
