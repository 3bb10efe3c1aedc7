package stability

import (
	"context"
)

// EngineService provides engine listing operations.
type EngineService struct {
	client *Client
}

// newEngineService creates a new engine service.
func newEngineService(client *Client) *EngineService {
	return &EngineService{client: client}
}

// List returns the engines available to the account.
func (s *EngineService) List(ctx context.Context) ([]Engine, error) {
	var engines []Engine
	if err := s.client.http.request(ctx, "GET", "/v1/engines/list", nil, &engines); err != nil {
		return nil, err
	}
	return engines, nil
}
