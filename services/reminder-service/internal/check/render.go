package check

import (
	"fmt"
	"strings"

	"github.com/MGmadhavan/medication-reminder-app/internal/models"
)

// RenderMessage builds the caretaker notification for one batch. The two
// modes share the list-of-doses shape but differ in urgency of the copy.
func RenderMessage(mode Mode, batch Batch, from string) models.EmailMessage {
	if mode == ModeMissed {
		return missedAlertMessage(batch, from)
	}
	return reminderMessage(batch, from)
}

func missedAlertMessage(batch Batch, from string) models.EmailMessage {
	name := batch.UserDisplayName()

	var b strings.Builder
	b.WriteString("<h2>Missed Medication Alert</h2>")
	b.WriteString("<p>Dear Caretaker,</p>")
	b.WriteString("<p>This is an urgent alert from the Medication Reminder App.</p>")
	fmt.Fprintf(&b, "<p>The following medications were <strong>MISSED</strong> today by <strong>%s</strong>:</p>", name)
	b.WriteString("<ul>")
	for _, d := range batch.Medications {
		fmt.Fprintf(&b, "<li><strong>%s</strong> (%s) - was scheduled for %s</li>", d.Name, d.Dosage, d.Time)
	}
	b.WriteString("</ul>")
	b.WriteString("<p><strong>Please check in with them to ensure they take their missed medications.</strong></p>")
	b.WriteString("<p>Best regards,<br>Medication Reminder App</p>")

	return models.EmailMessage{
		To:      batch.CaretakerEmail,
		From:    from,
		Subject: fmt.Sprintf("Missed Medication Alert - %s", name),
		HTML:    b.String(),
	}
}

func reminderMessage(batch Batch, from string) models.EmailMessage {
	name := batch.UserDisplayName()

	var b strings.Builder
	b.WriteString("<h2>Medication Reminder</h2>")
	b.WriteString("<p>Dear Caretaker,</p>")
	b.WriteString("<p>This is a friendly reminder from the Medication Reminder App.</p>")
	fmt.Fprintf(&b, "<p>It's time for <strong>%s</strong> to take the following medication(s):</p>", name)
	b.WriteString("<ul>")
	for _, d := range batch.Medications {
		fmt.Fprintf(&b, "<li><strong>%s</strong> (%s) - scheduled for %s</li>", d.Name, d.Dosage, d.Time)
	}
	b.WriteString("</ul>")
	b.WriteString("<p>Please remind them to take their medication now.</p>")
	b.WriteString("<p>Best regards,<br>Medication Reminder App</p>")

	return models.EmailMessage{
		To:      batch.CaretakerEmail,
		From:    from,
		Subject: fmt.Sprintf("Medication Reminder - %s", name),
		HTML:    b.String(),
	}
}
