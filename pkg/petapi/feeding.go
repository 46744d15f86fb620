package petapi

import "context"

// FeedingSchedulesQuery selects the schedules of one pet.
type FeedingSchedulesQuery struct {
	Key   string `mapstructure:"key"`
	PetID string `mapstructure:"petId"`
}

// AddFeedingDeviceRequest adds a feeding schedule to a device. The backend spells the
// schedule info field "scheduleIndo". FoodAmount is in grams.
type AddFeedingDeviceRequest struct {
	Key          string `mapstructure:"key"`
	PetID        string `mapstructure:"petId"`
	DeviceID     string `mapstructure:"deviceId"`
	ScheduleTime string `mapstructure:"scheduleTime"`
	FoodAmount   string `mapstructure:"foodAmount"`
	IsActive     string `mapstructure:"isActive"`
	ScheduleInfo string `mapstructure:"scheduleIndo"`
}

// GetFeedingSchedules lists the feeding schedules configured for a pet.
func (c *Client) GetFeedingSchedules(ctx context.Context, key, petID string) ([]FeedingSchedule, error) {
	return get[[]FeedingSchedule](ctx, c, basePath+"/feedingSchedules", FeedingSchedulesQuery{Key: key, PetID: petID})
}

// AddFeedingDevices registers a feeding schedule and returns the server's result message.
func (c *Client) AddFeedingDevices(ctx context.Context, req AddFeedingDeviceRequest) (string, error) {
	return post[string](ctx, c, basePath+"/addFeedingDevices", req)
}
