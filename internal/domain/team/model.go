package team

// Principal is the authenticated caller: a user acting for a team.
// Identity itself is owned by the account service; this is only the
// verified projection.
type Principal struct {
	UserID string
	TeamID string
	Email  string
}

// Profile is a team's public card as served by the upstream API.
type Profile struct {
	ID          string
	Name        string
	LogoURL     string
	Level       string
	City        string
	HomeGround  string
	MemberCount int
	Bio         string
}
