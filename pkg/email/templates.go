package email

import (
	"fmt"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	Name        string // recipient display name
	Email       string
	DoctorName  string
	PatientName string
	Date        string // YYYY-MM-DD
	Time        string // HH:mm
	Reason      string
	AppName     string
}

func (d AppointmentEmailData) appName() string {
	if d.AppName == "" {
		return "DerMee"
	}
	return d.AppName
}

func (d AppointmentEmailData) greetName() string {
	if d.Name == "" {
		return "there"
	}
	return d.Name
}

// BuildAppointmentRequestedEmail notifies the patient that the booking was
// placed and is waiting for the doctor's approval.
func BuildAppointmentRequestedEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	subject := fmt.Sprintf("Your appointment request with Dr. %s", data.DoctorName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment request with Dr. %s on %s at %s has been received.

You will get another email as soon as the doctor confirms it.

Thanks,
The %s Team`,
		data.greetName(), data.DoctorName, data.Date, data.Time, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment request with <strong>Dr. %s</strong> has been received.</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        <strong>%s</strong> at <strong>%s</strong>
    </p>
    <p>You will get another email as soon as the doctor confirms it.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.greetName(), data.DoctorName, data.Date, data.Time, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentConfirmedEmail tells the patient the doctor approved.
func BuildAppointmentConfirmedEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	subject := fmt.Sprintf("Appointment confirmed with Dr. %s", data.DoctorName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with Dr. %s on %s at %s has been confirmed.

See you then!

Thanks,
The %s Team`,
		data.greetName(), data.DoctorName, data.Date, data.Time, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #16a34a;">Hi %s,</h2>
    <p>Your appointment with <strong>Dr. %s</strong> has been <strong>confirmed</strong>.</p>
    <p style="background-color: #f0fdf4; padding: 15px; border-radius: 6px; border: 1px solid #16a34a;">
        <strong>%s</strong> at <strong>%s</strong>
    </p>
    <p>See you then!</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.greetName(), data.DoctorName, data.Date, data.Time, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentCancelledEmail covers both doctor rejection and
// patient-side cancellation; Reason is optional.
func BuildAppointmentCancelledEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	subject := fmt.Sprintf("Appointment cancelled with Dr. %s", data.DoctorName)

	reasonText := ""
	reasonHTML := ""
	if data.Reason != "" {
		reasonText = fmt.Sprintf("\nReason: %s\n", data.Reason)
		reasonHTML = fmt.Sprintf(`<p style="color: #6b7280;">Reason: %s</p>`, data.Reason)
	}

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with Dr. %s on %s at %s has been cancelled.
%s
You can book a new appointment at any time.

Thanks,
The %s Team`,
		data.greetName(), data.DoctorName, data.Date, data.Time, reasonText, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #ef4444;">Hi %s,</h2>
    <p>Your appointment with <strong>Dr. %s</strong> on <strong>%s</strong> at <strong>%s</strong> has been <strong>cancelled</strong>.</p>
    %s
    <p>You can book a new appointment at any time.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.greetName(), data.DoctorName, data.Date, data.Time, reasonHTML, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentRescheduledEmail tells the patient about the new time.
func BuildAppointmentRescheduledEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	subject := fmt.Sprintf("Appointment rescheduled by Dr. %s", data.DoctorName)

	textBody := fmt.Sprintf(`Hi %s,

Dr. %s has moved your appointment to %s at %s.

If the new time does not work for you, you can cancel and book a different slot.

Thanks,
The %s Team`,
		data.greetName(), data.DoctorName, data.Date, data.Time, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p><strong>Dr. %s</strong> has moved your appointment to:</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        <strong>%s</strong> at <strong>%s</strong>
    </p>
    <p>If the new time does not work for you, you can cancel and book a different slot.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.greetName(), data.DoctorName, data.Date, data.Time, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildNewRequestForDoctorEmail notifies the doctor of a pending booking.
func BuildNewRequestForDoctorEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	subject := "New appointment request"

	textBody := fmt.Sprintf(`Hi Dr. %s,

%s has requested an appointment on %s at %s.

Approve or reject it from your dashboard.

Thanks,
The %s Team`,
		data.greetName(), data.PatientName, data.Date, data.Time, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi Dr. %s,</h2>
    <p><strong>%s</strong> has requested an appointment:</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        <strong>%s</strong> at <strong>%s</strong>
    </p>
    <p>Approve or reject it from your dashboard.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		data.greetName(), data.PatientName, data.Date, data.Time, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
