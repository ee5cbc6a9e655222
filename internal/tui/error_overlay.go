package tui

// overlayWidth keeps long server messages from stretching the box across
// the whole terminal.
const overlayWidth = 60

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	body := errorStyle.Render("Something went wrong") + "\n\n" +
		m.message + "\n\n" +
		helpStyle.Render("enter / esc close")

	return overlayBoxStyle.Width(overlayWidth).Render(body)
}
