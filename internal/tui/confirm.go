package tui

type deleteTarget int

const (
	deleteProject deleteTarget = iota
	deleteReview
)

// confirmModel asks before anything is deleted.
type confirmModel struct {
	target deleteTarget
	id     string
	label  string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.label + "\"?\n\n"
	if m.target == deleteProject {
		content += "The video and thumbnail are removed as well.\n\n"
	}
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
