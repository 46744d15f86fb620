package petapi

import "context"

// LoginRequest holds login credentials. The backend names the password field "psd".
type LoginRequest struct {
	UserName string `mapstructure:"userName"`
	Password string `mapstructure:"psd"`
}

// SetUserInfoRequest registers a user (Type "0") or updates a profile (Type "1").
// Updates are expected to carry Key. Empty optional fields are not sent.
type SetUserInfoRequest struct {
	UserName    string       `mapstructure:"userName"`
	Password    string       `mapstructure:"password"`
	Type        UserInfoType `mapstructure:"type"`
	Email       string       `mapstructure:"email,omitempty"`
	PhoneNumber string       `mapstructure:"phoneNumber,omitempty"`
	HomeAddress string       `mapstructure:"homeAddress,omitempty"`
	Key         string       `mapstructure:"key,omitempty"`
}

// Login authenticates a user and returns the profile together with its auth key.
func (c *Client) Login(ctx context.Context, req LoginRequest) (User, error) {
	return post[User](ctx, c, basePath+"/petsUserLogin", req)
}

// SetUserInfo registers or updates a user and returns the server's result message.
func (c *Client) SetUserInfo(ctx context.Context, req SetUserInfoRequest) (string, error) {
	if c != nil && req.Type == UserInfoUpdate && req.Key == "" {
		c.log.WarnObj("updating user info without key", "request_meta", map[string]any{
			"userName": req.UserName,
		})
	}
	return post[string](ctx, c, basePath+"/setUserinfo", req)
}
