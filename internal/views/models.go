package views

import "time"

// Viewer is who is looking at the page.
type Viewer struct {
	Username string
	Guest    bool
}

func (v Viewer) DisplayName() string {
	if v.Guest || v.Username == "" {
		return "Guest"
	}
	return v.Username
}

type LoginView struct {
	Username string
	Error    string
	Notice   string
}

type RegisterView struct {
	Username string
	Error    string
}

type PathNode struct {
	ID        int
	Completed bool
	Current   bool
}

type PathCycle struct {
	Number int
	Nodes  []PathNode
}

type HomeView struct {
	Viewer           Viewer
	Streak           int
	HighestCompleted int
	Path             []PathCycle
	Demo             bool
}

type WorkoutOption struct {
	ID         int
	Name       string
	Categories []string
}

type WorkoutsView struct {
	Viewer   Viewer
	Streak   int
	Workouts []WorkoutOption
	Demo     bool
}

type CalendarDay struct {
	Date       time.Time
	Categories []string
	Done       bool
	Today      bool
}

type CalendarView struct {
	Viewer Viewer
	Days   []CalendarDay
	Demo   bool
}

type AchievementBadge struct {
	Code     string
	Title    string
	Icon     string
	Earned   bool
	EarnedAt *time.Time
}

type AchievementsView struct {
	Viewer       Viewer
	Achievements []AchievementBadge
	Demo         bool
}

type ProfileView struct {
	Viewer       Viewer
	Streak       int
	EarnedBadges int
	HasPicture   bool
	Demo         bool
}
