package design

import (
	"context"
)

// DeleteDesign removes the design with uid
func (s *Service) DeleteDesign(ctx context.Context, uid string) error {
	uid, err := validateUID(uid)
	if err != nil {
		return err
	}

	if err := s.designRepo.Delete(ctx, uid); err != nil {
		return err
	}
	s.invalidate(ctx, uid)

	s.logger.Info("Design deleted", map[string]any{"uid": uid})
	return nil
}
