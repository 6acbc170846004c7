package employee

// Location is where an employee is working today.
type Location string

const (
	LocationOffice     Location = "office"
	LocationHomeOffice Location = "home_office"
	LocationOnTheRoad  Location = "on_the_road"
	LocationVacation   Location = "vacation"
	LocationSick       Location = "sick"
)

// Presence is an employee's chat availability indicator.
type Presence string

const (
	PresenceOnline  Presence = "online"
	PresenceAway    Presence = "away"
	PresenceOffline Presence = "offline"
)

// Employee is one row of the employee list with today's whereabouts.
// The list payload already uses first_name/last_name, unlike the auth
// payloads, so it decodes straight into this shape.
type Employee struct {
	ID            string   `json:"id"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email,omitempty"`
	Role          string   `json:"role,omitempty"`
	TodayLocation Location `json:"today_location"`
	Presence      Presence `json:"presence,omitempty"`
}

// Groups holds the employee list partitioned by today's location, the
// grouping the dashboard renders.
type Groups struct {
	Office     []Employee
	HomeOffice []Employee
	OnTheRoad  []Employee
	Vacation   []Employee
	Sick       []Employee
	Unknown    []Employee
}

// GroupByLocation partitions employees by their location today. Employees
// with an unrecognised or empty location land in Unknown rather than being
// dropped.
func GroupByLocation(employees []Employee) Groups {
	var groups Groups
	for _, e := range employees {
		switch e.TodayLocation {
		case LocationOffice:
			groups.Office = append(groups.Office, e)
		case LocationHomeOffice:
			groups.HomeOffice = append(groups.HomeOffice, e)
		case LocationOnTheRoad:
			groups.OnTheRoad = append(groups.OnTheRoad, e)
		case LocationVacation:
			groups.Vacation = append(groups.Vacation, e)
		case LocationSick:
			groups.Sick = append(groups.Sick, e)
		default:
			groups.Unknown = append(groups.Unknown, e)
		}
	}
	return groups
}
