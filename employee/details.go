package employee

// WorkloadStatus is the traffic-light workload indicator on a profile.
type WorkloadStatus string

const (
	WorkloadGreen  WorkloadStatus = "green"
	WorkloadYellow WorkloadStatus = "yellow"
	WorkloadRed    WorkloadStatus = "red"
)

// Details holds the extended profile fields shown on the profile page.
type Details struct {
	ID              string         `json:"id"`
	UserID          string         `json:"user_id"`
	Role            string         `json:"role,omitempty"`
	Location        string         `json:"location,omitempty"`
	ProfileBio      string         `json:"profile_bio,omitempty"`
	OfficeDays      []string       `json:"office_days,omitempty"`
	WorkloadStatus  WorkloadStatus `json:"workload_status,omitempty"`
	TodayLocation   Location       `json:"today_location,omitempty"`
	Skills          string         `json:"skills,omitempty"`
	Interests       string         `json:"interests,omitempty"`
	FavoriteRecipes string         `json:"favorite_recipes,omitempty"`
	Recommendations string         `json:"recommendations,omitempty"`
	DaysWithCompany int            `json:"days_with_company,omitempty"`
}
