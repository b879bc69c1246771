package handler

import (
	"github.com/bazarxpress/account-service/internal/core/domain"
	"github.com/bazarxpress/account-service/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerRequest) ports.RegisterInput {
	return ports.RegisterInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
	}
}

func toLoginInput(req loginRequest) ports.LoginInput {
	return ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}
}

func toProfileUpdate(req updateProfileRequest) domain.ProfileUpdate {
	update := domain.ProfileUpdate{
		Name:        req.Name,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
	}
	if req.Address != nil {
		update.Address = &domain.Address{
			Street:     req.Address.Street,
			City:       req.Address.City,
			State:      req.Address.State,
			PostalCode: req.Address.PostalCode,
			Country:    req.Address.Country,
		}
	}
	return update
}

// --- Domain → Response ---

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Phone:       u.Phone,
		DateOfBirth: u.DateOfBirth,
	}
	if u.Address != nil && !u.Address.IsZero() {
		resp.Address = &addressPayload{
			Street:     u.Address.Street,
			City:       u.Address.City,
			State:      u.Address.State,
			PostalCode: u.Address.PostalCode,
			Country:    u.Address.Country,
		}
	}
	return resp
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

func toAuthResponse(res *ports.AuthResult) authResponse {
	return authResponse{
		Token: res.Token,
		User:  toUserResponse(res.User),
	}
}
