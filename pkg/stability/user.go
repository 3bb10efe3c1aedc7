package stability

import (
	"context"
)

// UserService provides account operations.
type UserService struct {
	client *Client
}

// newUserService creates a new user service.
func newUserService(client *Client) *UserService {
	return &UserService{client: client}
}

// Balance returns the remaining credit on the account.
func (s *UserService) Balance(ctx context.Context) (*Balance, error) {
	var balance Balance
	if err := s.client.http.request(ctx, "GET", "/v1/user/balance", nil, &balance); err != nil {
		return nil, err
	}
	return &balance, nil
}
