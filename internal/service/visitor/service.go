package visitor

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/gatelog"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/settings"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/domain/visitor"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/metrics"
	"github.com/hostwebit342-png/gatemaster-backend-go/internal/pkg/validator"
)

// VisitorService handles the visitor badge cycle at the gate desk.
type VisitorService struct {
	visitorRepo  visitor.VisitorRepository
	logRepo      gatelog.GateLogRepository
	settingsRepo settings.SettingsRepository
}

func NewVisitorService(visitorRepo visitor.VisitorRepository, logRepo gatelog.GateLogRepository, settingsRepo settings.SettingsRepository) *VisitorService {
	return &VisitorService{
		visitorRepo:  visitorRepo,
		logRepo:      logRepo,
		settingsRepo: settingsRepo,
	}
}

// Register records a visitor IN entry and issues the badge OTP. A visitor
// whose mobile number is still IN cannot be registered again.
func (s *VisitorService) Register(ctx context.Context, req visitor.RegisterVisitorRequest) (visitor.Visitor, error) {
	if err := req.Validate(); err != nil {
		return visitor.Visitor{}, err
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return visitor.Visitor{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !validator.IsInSlice(req.Department, cfg.Departments) {
		return visitor.Visitor{}, validator.ValidationErrors{{
			Field:   "department",
			Message: "department is not configured",
		}}
	}

	inside, err := s.visitorRepo.ExistsInside(ctx, req.Mobile)
	if err != nil {
		return visitor.Visitor{}, fmt.Errorf("failed to check visitor presence: %w", err)
	}
	if inside {
		return visitor.Visitor{}, visitor.ErrVisitorAlreadyInside
	}

	now := time.Now()
	v := visitor.Visitor{
		Date:        now.Truncate(24 * time.Hour),
		Name:        req.Name,
		Mobile:      req.Mobile,
		MeetingWith: req.MeetingWith,
		Department:  req.Department,
		Purpose:     visitor.Purpose(req.Purpose),
		InTime:      now,
		OTP:         generateOTP(),
		Photo:       req.Photo,
		Status:      visitor.StatusIn,
	}

	created, err := s.visitorRepo.Create(ctx, v)
	if err != nil {
		return visitor.Visitor{}, fmt.Errorf("failed to create visitor: %w", err)
	}

	s.appendLog(ctx, created, gatelog.ActionVisitorIn,
		fmt.Sprintf("Mobile: %s, Meeting with %s", created.Mobile, created.MeetingWith))
	metrics.VisitorRegistrations.Inc()

	return created, nil
}

// MarkOut closes an IN badge. A visitor already OUT is left untouched.
func (s *VisitorService) MarkOut(ctx context.Context, id string) (visitor.Visitor, error) {
	now := time.Now()

	applied, err := s.visitorRepo.MarkOut(ctx, id, now)
	if err != nil {
		return visitor.Visitor{}, fmt.Errorf("failed to mark visitor out: %w", err)
	}

	v, err := s.visitorRepo.GetByID(ctx, id)
	if err != nil {
		return visitor.Visitor{}, err
	}

	if !applied {
		slog.Info("Visitor mark-out ignored, already out", "visitor_id", v.ID)
		return v, nil
	}

	s.appendLog(ctx, v, gatelog.ActionVisitorOut,
		fmt.Sprintf("Out time: %s", now.Format("15:04:05")))

	return v, nil
}

// List returns all visitors, newest first.
func (s *VisitorService) List(ctx context.Context) ([]visitor.Visitor, error) {
	return s.visitorRepo.List(ctx)
}

// ListInside returns visitors currently on the premises.
func (s *VisitorService) ListInside(ctx context.Context) ([]visitor.Visitor, error) {
	return s.visitorRepo.ListInside(ctx)
}

func (s *VisitorService) appendLog(ctx context.Context, v visitor.Visitor, action, details string) {
	_, err := s.logRepo.Append(ctx, gatelog.GateLog{
		Name:    v.Name,
		Type:    gatelog.TypeVisitor,
		Action:  action,
		Details: details,
	})
	if err != nil {
		slog.Error("Failed to append gate log", "action", action, "visitor_id", v.ID, "error", err)
	}
}

// generateOTP returns a 4 digit badge verification code.
func generateOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		return "0000"
	}
	return fmt.Sprintf("%04d", n.Int64()+1000)
}
