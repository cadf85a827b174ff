package boletos

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/boletos/model"
)

type RegisterPushRequest struct {
	Endpoint string `json:"endpoint" validate:"required,url"`
	P256dh   string `json:"p256dh" validate:"required"`
	Auth     string `json:"auth" validate:"required"`
}

type RegisterPushResponse struct {
	Subscription model.PushSubscription `json:"subscription"`
}

// RegisterPush stores or refreshes a web push subscription for the caller.
// Subscriptions are keyed by endpoint, so re-registering the same browser
// updates the keys in place.
//
//encore:api auth path=/v1/push/subscriptions method=POST
func (s *Service) RegisterPush(ctx context.Context, req *RegisterPushRequest) (*RegisterPushResponse, error) {
	ownerID, err := currentOwner()
	if err != nil {
		return nil, err
	}

	sub, err := s.delivery.RegisterSubscription(ctx, ownerID, req.Endpoint, req.P256dh, req.Auth)
	if err != nil {
		rlog.Error("failed to register push subscription", "error", err)
		return nil, err
	}
	return &RegisterPushResponse{Subscription: *sub}, nil
}

// Validate implements validation for RegisterPushRequest using go-playground/validator
func (r *RegisterPushRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type PushKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// PushKey exposes the VAPID public key browsers need to subscribe.
//
//encore:api auth path=/v1/push/key method=GET
func (s *Service) PushKey(ctx context.Context) (*PushKeyResponse, error) {
	return &PushKeyResponse{PublicKey: secrets.VAPIDPublicKey}, nil
}
