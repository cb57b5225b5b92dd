package views

func nodeClass(node PathNode) string {
	switch {
	case node.Completed:
		return "node node-completed"
	case node.Current:
		return "node node-current"
	}
	return "node"
}

func dayClass(d CalendarDay) string {
	class := "day"
	if d.Done {
		class += " day-done"
	}
	if d.Today {
		class += " day-today"
	}
	return class
}

func badgeClass(a AchievementBadge) string {
	if a.Earned {
		return "badge badge-earned"
	}
	return "badge badge-locked"
}
