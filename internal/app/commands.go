package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/wxtcc/petcare-client/pkg/petapi"
)

// command binds one subcommand to its flags and the petapi call it makes.
type command struct {
	name    string
	summary string
	run     func(ctx context.Context, c *petapi.Client, args []string) (any, error)
}

func commands() []command {
	return []command{
		{name: "login", summary: "log in and print the user profile with its auth key", run: runLogin},
		{name: "set-userinfo", summary: "register a user (--type 0) or update a profile (--type 1)", run: runSetUserInfo},
		{name: "pets", summary: "list a user's pets", run: runPets},
		{name: "update-pets", summary: "update a pet record", run: runUpdatePets},
		{name: "feeding-schedules", summary: "list a pet's feeding schedules", run: runFeedingSchedules},
		{name: "add-feeding-device", summary: "add a feeding schedule to a device", run: runAddFeedingDevice},
		{name: "health-history", summary: "page through a pet's health records", run: runHealthHistory},
		{name: "monitoring", summary: "print the latest environmental reading", run: runMonitoring},
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	return fs
}

// parse parses args and checks that every flag in required has a non-empty value.
func parse(fs *pflag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%s: unexpected arguments %v", fs.Name(), fs.Args())
	}
	var missing []string
	for _, name := range required {
		if v, err := fs.GetString(name); err != nil || strings.TrimSpace(v) == "" {
			missing = append(missing, "--"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: missing required flags %s", fs.Name(), strings.Join(missing, ", "))
	}
	return nil
}

func runLogin(ctx context.Context, c *petapi.Client, args []string) (any, error) {
	fs := newFlagSet("login")
	var req petapi.LoginRequest
	fs.StringVar(&req.UserName, "user", "", "user name")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := parse(fs, args, "user", "password"); err != nil {
		return nil, err
	}
	return c.Login(ctx, req)
}

func runSetUserInfo(ctx context.Context, c *petapi.Client, args []string) (any, error) {
	fs := newFlagSet("set-userinfo")
	var req petapi.SetUserInfoRequest
	var typ string
	fs.StringVar(&req.UserName, "user", "", "user name")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&typ, "type", string(petapi.UserInfoRegister), "0 to register, 1 to update")
	fs.StringVar(&req.Email, "email", "", "email address")
	fs.StringVar(&req.PhoneNumber, "phone", "", "phone number")
	fs.StringVar(&req.HomeAddress, "address", "", "home address")
	fs.StringVar(&req.Key, "key", "", "auth key (required with --type 1)")
	if err := parse(fs, args, "user", "password"); err != nil {
		return nil, err
	}
	switch petapi.UserInfoType(typ) {
	case petapi.UserInfoRegister, petapi.UserInfoUpdate:
		req.Type = petapi.UserInfoType(typ)
	default:
		return nil, fmt.Errorf("set-userinfo: invalid --type %q (must be 0 or 1)", typ)
	}
	return c.SetUserInfo(ctx, req)
}

func runPets(ctx context.Context, c *petapi.Client, args []string) (any, error) {
	fs := newFlagSet("pets")
	var q petapi.UserQuery
	fs.StringVar(&q.Key, "key", "", "auth key")
	fs.StringVar(&q.UserID, "user-id", petapi.DefaultUserID, "user id")
	if err := parse(fs, args, "key"); err != nil {
		return nil, err
	}
	return c.GetUserPets(ctx, q)
}

func runUpdatePets(ctx context.Context, c *petapi.Client, args []string) (any, error) {
	fs := newFlagSet("update-pets")
	var req petapi.UpdatePetsRequest
	fs.StringVar(&req.Key, "key", "", "auth key")
	fs.StringVar(&req.ID, "id", "", "pet id")
	fs.StringVar(&req.UserID, "user-id", petapi.DefaultUserID, "owner user id")
	fs.StringVar(&req.PetName, "name", "", "pet name")
	fs.StringVar(&req.PetSpecies, "species", "", "species, e.g. dog or cat")
	fs.StringVar(&req.PetBreed, "breed", "", "breed")
	fs.StringVar(&req.PetGender, "gender", "", "male or female")
	fs.StringVar(&req.BirthDate, "birth-date", "", "birth date (ISO 8601)")
	fs.StringVar(&req.CurrentWeight, "weight", "", "current weight in kg")
	fs.StringVar(&req.HealthStatus, "health", "", "health status")
	if err := parse(fs, args, "key", "id"); err != nil {
		return nil, err
	}
	return c.UpdatePets(ctx, req)
}

func runFeedingSchedules(ctx context.Context, c *petapi.Client, args []string) (any, error) {
	fs := newFlagSet("feeding-schedules")
	var key, petID string
	fs.StringVar(&key, "key", "", "auth key")
	fs.StringVar(&petID, "pet-id", "", "pet id")
	if err := parse(fs, args, "key", "pet-id"); err != nil {
		return nil, err
	}
	return c.GetFeedingSchedules(ctx, key, petID)
}

func runAddFeedingDevice(ctx context.Context, c *petapi.Client, args []string) (any, error) {
	fs := newFlagSet("add-feeding-device")
	var req petapi.AddFeedingDeviceRequest
	fs.StringVar(&req.Key, "key", "", "auth key")
	fs.StringVar(&req.PetID, "pet-id", "", "pet id")
	fs.StringVar(&req.DeviceID, "device-id", "1", "feeder device id")
	fs.StringVar(&req.ScheduleTime, "time", "", "feeding time (HH:mm:ss)")
	fs.StringVar(&req.FoodAmount, "amount", "", "food amount in grams")
	fs.StringVar(&req.IsActive, "active", "true", "true or false")
	fs.StringVar(&req.ScheduleInfo, "info", "", "schedule description")
	if err := parse(fs, args, "key", "pet-id", "time", "amount"); err != nil {
		return nil, err
	}
	return c.AddFeedingDevices(ctx, req)
}

func runHealthHistory(ctx context.Context, c *petapi.Client, args []string) (any, error) {
	fs := newFlagSet("health-history")
	var req petapi.HealthHistoryRequest
	fs.StringVar(&req.Key, "key", "", "auth key")
	fs.StringVar(&req.PetID, "pet-id", "", "pet id")
	fs.StringVar(&req.StartTime, "start", "", "range start (YYYY-MM-DD HH:mm)")
	fs.StringVar(&req.EndTime, "end", "", "range end (YYYY-MM-DD HH:mm)")
	fs.StringVar(&req.Page, "page", "1", "page number")
	fs.StringVar(&req.Size, "size", "10", "page size")
	if err := parse(fs, args, "key", "pet-id", "start", "end"); err != nil {
		return nil, err
	}
	return c.GetPetHealthHistory(ctx, req)
}

func runMonitoring(ctx context.Context, c *petapi.Client, args []string) (any, error) {
	fs := newFlagSet("monitoring")
	var q petapi.UserQuery
	fs.StringVar(&q.Key, "key", "", "auth key")
	fs.StringVar(&q.UserID, "user-id", petapi.DefaultUserID, "user id")
	if err := parse(fs, args, "key"); err != nil {
		return nil, err
	}
	return c.GetUserMonitoring(ctx, q)
}
