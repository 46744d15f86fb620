package petapi

// Base path shared by every endpoint.
const basePath = "/officelease/pets"

// DefaultUserID is the user id the backend expects when none is given.
const DefaultUserID = "1"

// UserInfoType selects between registration and profile update.
type UserInfoType string

const (
	UserInfoRegister UserInfoType = "0"
	UserInfoUpdate   UserInfoType = "1"
)

// Gender is the petGender value of a pet.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Health record levels as reported by the backend.
const (
	AppetiteExcellent = "Excellent"
	AppetiteNormal    = "Normal"
	AppetitePoor      = "Poor"

	EnergyHigh   = "High"
	EnergyNormal = "Normal"
	EnergyLow    = "Low"

	VaccinationUpToDate = "Up-to-date"
	VaccinationOverdue  = "Overdue"

	DewormingCompleted = "Completed"
	DewormingPending   = "Pending"
)

// Air quality ratings reported by monitoring.
const (
	AirQualityGood     = "Good"
	AirQualityModerate = "Moderate"
	AirQualityPoor     = "Poor"
)

// User is the profile returned by Login. Key authenticates later calls.
type User struct {
	ID          string `json:"id" yaml:"id"`
	UserName    string `json:"userName" yaml:"userName"`
	Email       string `json:"email" yaml:"email"`
	PhoneNumber string `json:"phoneNumber" yaml:"phoneNumber"`
	HomeAddress string `json:"homeAddress" yaml:"homeAddress"`
	Key         string `json:"key" yaml:"key"`
}

// Pet is one pet profile owned by a user.
type Pet struct {
	ID            int64   `json:"id" yaml:"id"`
	UserID        int64   `json:"userId" yaml:"userId"`
	PetName       string  `json:"petName" yaml:"petName"`
	PetSpecies    string  `json:"petSpecies" yaml:"petSpecies"`
	PetBreed      string  `json:"petBreed" yaml:"petBreed"`
	PetGender     Gender  `json:"petGender" yaml:"petGender"`
	BirthDate     string  `json:"birthDate" yaml:"birthDate"`
	CurrentWeight float64 `json:"currentWeight" yaml:"currentWeight"`
	HealthStatus  string  `json:"healthStatus" yaml:"healthStatus"`
	CreatedAt     string  `json:"createdAt" yaml:"createdAt"`
	UpdatedAt     string  `json:"updatedAt" yaml:"updatedAt"`
}

// FeedingSchedule is one timed feeding on a device. ScheduleTime is HH:mm:ss and
// IsActive is "true" or "false".
type FeedingSchedule struct {
	ID           string `json:"id" yaml:"id"`
	PetID        string `json:"petId" yaml:"petId"`
	DeviceID     string `json:"deviceId" yaml:"deviceId"`
	ScheduleTime string `json:"scheduleTime" yaml:"scheduleTime"`
	FoodAmount   string `json:"foodAmount" yaml:"foodAmount"`
	IsActive     string `json:"isActive" yaml:"isActive"`
	CreatedAt    string `json:"createdAt" yaml:"createdAt"`
	UpdatedAt    string `json:"updatedAt" yaml:"updatedAt"`
	PetName      string `json:"petName" yaml:"petName"`
	PetBreed     string `json:"petBreed" yaml:"petBreed"`
	DeviceName   string `json:"deviceName" yaml:"deviceName"`
}

// PetHealthRecord is one entry of a pet's health history. Weight is in kg,
// temperature in degrees Celsius and heart rate in bpm.
type PetHealthRecord struct {
	PetName           string `json:"petName" yaml:"petName"`
	PetBreed          string `json:"petBreed" yaml:"petBreed"`
	RecordDate        string `json:"recordDate" yaml:"recordDate"`
	BodyWeight        string `json:"bodyWeight" yaml:"bodyWeight"`
	BodyTemperature   string `json:"bodyTemperature" yaml:"bodyTemperature"`
	HeartRate         string `json:"heartRate" yaml:"heartRate"`
	AppetiteLevel     string `json:"appetiteLevel" yaml:"appetiteLevel"`
	EnergyLevel       string `json:"energyLevel" yaml:"energyLevel"`
	VaccinationStatus string `json:"vaccinationStatus" yaml:"vaccinationStatus"`
	DewormingStatus   string `json:"dewormingStatus" yaml:"dewormingStatus"`
	VetNotes          string `json:"vetNotes" yaml:"vetNotes"`
}

// Monitoring is a single environmental reading for a user's home.
type Monitoring struct {
	UserID         string `json:"userId" yaml:"userId"`
	MonitoringTime string `json:"monitoringTime" yaml:"monitoringTime"`
	Temperature    string `json:"temperature" yaml:"temperature"`
	Humidity       string `json:"humidity" yaml:"humidity"`
	PM25           string `json:"pm25" yaml:"pm25"`
	CO2            string `json:"co2" yaml:"co2"`
	TVOC           string `json:"tvoc" yaml:"tvoc"`
	NoiseLevel     string `json:"noiseLevel" yaml:"noiseLevel"`
	LightIntensity string `json:"lightIntensity" yaml:"lightIntensity"`
	AirQuality     string `json:"airQuality" yaml:"airQuality"`
}
