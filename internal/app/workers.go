package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/dermee/dermee_backend/internal/repo"
	entmsg "github.com/dermee/dermee_backend/internal/repo/message"
	"github.com/dermee/dermee_backend/internal/ws"
	"github.com/dermee/dermee_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc    fx.Lifecycle
	NC    *nats.Conn
	DB    *repo.Client
	Email *email.Client
	WS    *ws.Handler
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAppointmentMailWorker(p.NC, p.DB, p.Email)
			startMessagePushWorker(p.NC, p.DB, p.WS)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// appointment_mail_worker
// ---------------------------------------------------------------------------

// apptParties loads the appointment plus both participants' user rows.
func apptParties(ctx context.Context, db *repo.Client, data []byte) (*repo.Appointment, *repo.User, *repo.User, bool) {
	apptID, err := uuid.Parse(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, nil, nil, false
	}

	appt, err := db.Appointment.Get(ctx, apptID)
	if err != nil {
		slog.Warn("appointment_mail_worker: appointment not found", "id", apptID, "err", err)
		return nil, nil, nil, false
	}

	docProf, err := db.DoctorProfile.Get(ctx, appt.DoctorID)
	if err != nil {
		slog.Warn("appointment_mail_worker: doctor profile not found", "id", appt.DoctorID, "err", err)
		return nil, nil, nil, false
	}
	patProf, err := db.PatientProfile.Get(ctx, appt.PatientID)
	if err != nil {
		slog.Warn("appointment_mail_worker: patient profile not found", "id", appt.PatientID, "err", err)
		return nil, nil, nil, false
	}

	doctor, err := db.User.Get(ctx, docProf.UserID)
	if err != nil {
		slog.Warn("appointment_mail_worker: doctor user not found", "id", docProf.UserID, "err", err)
		return nil, nil, nil, false
	}
	patient, err := db.User.Get(ctx, patProf.UserID)
	if err != nil {
		slog.Warn("appointment_mail_worker: patient user not found", "id", patProf.UserID, "err", err)
		return nil, nil, nil, false
	}

	return appt, doctor, patient, true
}

func sendMail(ctx context.Context, cli *email.Client, m email.Message) {
	if err := cli.Send(ctx, m); err != nil {
		slog.Warn("appointment_mail_worker: send failed", "to", m.To, "err", err)
	}
}

func startAppointmentMailWorker(nc *nats.Conn, db *repo.Client, cli *email.Client) {
	_, err := nc.Subscribe("dermee.appointment.created.*", func(msg *nats.Msg) {
		ctx := context.Background()
		appt, doctor, patient, okay := apptParties(ctx, db, msg.Data)
		if !okay {
			return
		}
		date := appt.StartAt.Format("2006-01-02")
		hour := appt.StartAt.Format("15:04")

		sendMail(ctx, cli, email.BuildAppointmentRequestedEmail(email.AppointmentEmailData{
			Name:       patient.Name,
			Email:      patient.Email,
			DoctorName: doctor.Name,
			Date:       date,
			Time:       hour,
		}))
		sendMail(ctx, cli, email.BuildNewRequestForDoctorEmail(email.AppointmentEmailData{
			Name:        doctor.Name,
			Email:       doctor.Email,
			PatientName: patient.Name,
			Date:        date,
			Time:        hour,
		}))
	})
	if err != nil {
		slog.Error("appointment_mail_worker: subscribe created failed", "err", err)
	}

	_, err = nc.Subscribe("dermee.appointment.confirmed.*", func(msg *nats.Msg) {
		ctx := context.Background()
		appt, doctor, patient, okay := apptParties(ctx, db, msg.Data)
		if !okay {
			return
		}
		sendMail(ctx, cli, email.BuildAppointmentConfirmedEmail(email.AppointmentEmailData{
			Name:       patient.Name,
			Email:      patient.Email,
			DoctorName: doctor.Name,
			Date:       appt.StartAt.Format("2006-01-02"),
			Time:       appt.StartAt.Format("15:04"),
		}))
	})
	if err != nil {
		slog.Error("appointment_mail_worker: subscribe confirmed failed", "err", err)
	}

	_, err = nc.Subscribe("dermee.appointment.rescheduled.*", func(msg *nats.Msg) {
		ctx := context.Background()
		appt, doctor, patient, okay := apptParties(ctx, db, msg.Data)
		if !okay {
			return
		}
		sendMail(ctx, cli, email.BuildAppointmentRescheduledEmail(email.AppointmentEmailData{
			Name:       patient.Name,
			Email:      patient.Email,
			DoctorName: doctor.Name,
			Date:       appt.StartAt.Format("2006-01-02"),
			Time:       appt.StartAt.Format("15:04"),
		}))
	})
	if err != nil {
		slog.Error("appointment_mail_worker: subscribe rescheduled failed", "err", err)
	}

	_, err = nc.Subscribe("dermee.appointment.cancelled.*", func(msg *nats.Msg) {
		ctx := context.Background()
		appt, doctor, patient, okay := apptParties(ctx, db, msg.Data)
		if !okay {
			return
		}
		sendMail(ctx, cli, email.BuildAppointmentCancelledEmail(email.AppointmentEmailData{
			Name:       patient.Name,
			Email:      patient.Email,
			DoctorName: doctor.Name,
			Date:       appt.StartAt.Format("2006-01-02"),
			Time:       appt.StartAt.Format("15:04"),
		}))
	})
	if err != nil {
		slog.Error("appointment_mail_worker: subscribe cancelled failed", "err", err)
	}

	slog.Info("appointment_mail_worker: started")
}

// ---------------------------------------------------------------------------
// message_push_worker
// ---------------------------------------------------------------------------

// startMessagePushWorker forwards new direct messages to connected websocket
// clients. The subject carries the recipient id; the payload the message id.
func startMessagePushWorker(nc *nats.Conn, db *repo.Client, wsHandler *ws.Handler) {
	_, err := nc.Subscribe("dermee.message.new.*", func(msg *nats.Msg) {
		msgID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()
		m, err := db.Message.Query().
			Where(entmsg.ID(msgID)).
			Only(ctx)
		if err != nil {
			slog.Warn("message_push_worker: message not found", "id", msgID, "err", err)
			return
		}

		wsHandler.PushMessage(m)
	})
	if err != nil {
		slog.Error("message_push_worker: subscribe message.new failed", "err", err)
	}

	slog.Info("message_push_worker: started")
}
