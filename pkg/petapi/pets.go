package petapi

import "context"

// UserQuery scopes a lookup to one user. An empty UserID selects DefaultUserID.
type UserQuery struct {
	Key    string `mapstructure:"key"`
	UserID string `mapstructure:"userId"`
}

func (q UserQuery) withDefaults() UserQuery {
	if q.UserID == "" {
		q.UserID = DefaultUserID
	}
	return q
}

// UpdatePetsRequest updates a pet record. The backend expects "currentweight" and
// "healthstatus" in lowercase.
type UpdatePetsRequest struct {
	Key           string `mapstructure:"key"`
	PetName       string `mapstructure:"petName"`
	PetSpecies    string `mapstructure:"petSpecies"`
	PetBreed      string `mapstructure:"petBreed"`
	PetGender     string `mapstructure:"petGender"`
	BirthDate     string `mapstructure:"birthDate"`
	CurrentWeight string `mapstructure:"currentweight"`
	HealthStatus  string `mapstructure:"healthstatus"`
	ID            string `mapstructure:"id"`
	UserID        string `mapstructure:"userId"`
}

// GetPets lists the pets of the default user.
func (c *Client) GetPets(ctx context.Context, key string) ([]Pet, error) {
	return c.GetUserPets(ctx, UserQuery{Key: key})
}

// GetUserPets lists the pets of q.UserID.
func (c *Client) GetUserPets(ctx context.Context, q UserQuery) ([]Pet, error) {
	return get[[]Pet](ctx, c, basePath+"/getPets", q.withDefaults())
}

// UpdatePets updates a pet record and returns the server's result message.
func (c *Client) UpdatePets(ctx context.Context, req UpdatePetsRequest) (string, error) {
	return post[string](ctx, c, basePath+"/updatePets", req)
}
