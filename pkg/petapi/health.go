package petapi

import "context"

// HealthHistoryRequest pages through a pet's health records. StartTime and EndTime
// use the "YYYY-MM-DD HH:mm" layout.
type HealthHistoryRequest struct {
	Key       string `mapstructure:"key"`
	PetID     string `mapstructure:"petId"`
	StartTime string `mapstructure:"startTime"`
	EndTime   string `mapstructure:"endTime"`
	Page      string `mapstructure:"page"`
	Size      string `mapstructure:"size"`
}

// GetPetHealthHistory returns one page of health records.
func (c *Client) GetPetHealthHistory(ctx context.Context, req HealthHistoryRequest) (DataList[PetHealthRecord], error) {
	return get[DataList[PetHealthRecord]](ctx, c, basePath+"/getPetHealthHistory", req)
}
