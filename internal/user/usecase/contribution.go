package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"assistant-widget/internal/model"
	"assistant-widget/internal/user"
)

func (uc *implUseCase) SubmitContribution(ctx context.Context, ip user.SubmitContributionInput) (model.Contribution, error) {
	if strings.TrimSpace(ip.Question) == "" || strings.TrimSpace(ip.Answer) == "" {
		return model.Contribution{}, user.ErrFieldRequired
	}

	// Contributions require an existing owner document.
	if _, err := uc.repo.Get(ctx, ip.Username); err != nil {
		return model.Contribution{}, err
	}

	c := model.Contribution{
		ID:        uuid.NewString(),
		Name:      ip.Name,
		Question:  ip.Question,
		Answer:    ip.Answer,
		Status:    model.ContributionPending,
		CreatedAt: uc.clock().UTC(),
	}
	return uc.repo.CreateContribution(ctx, ip.Username, c)
}

func (uc *implUseCase) ListContributions(ctx context.Context, username string) ([]model.Contribution, error) {
	return uc.repo.ListContributions(ctx, username)
}

func (uc *implUseCase) ReviewContribution(ctx context.Context, ip user.ReviewContributionInput) error {
	switch ip.Status {
	case model.ContributionApproved, model.ContributionRejected, model.ContributionPending:
	default:
		return user.ErrInvalidStatus
	}
	return uc.repo.UpdateContributionStatus(ctx, ip.Username, ip.ContributionID, ip.Status)
}
