package notify

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hanksha/padel-booking-backend/reservation"
	"go.uber.org/zap"
)

const (
	colorBooked    = 0x2ecc71
	colorCancelled = 0xe74c3c
)

// ReservationNotifier posts reservation events to a Discord channel.
// Delivery failures are logged and never reach the caller.
type ReservationNotifier struct {
	client    DiscordClient
	channelID string
	logger    *zap.Logger
}

func NewReservationNotifier(client DiscordClient, channelID string, logger *zap.Logger) *ReservationNotifier {
	return &ReservationNotifier{client: client, channelID: channelID, logger: logger}
}

func (n *ReservationNotifier) ReservationCreated(ctx context.Context, r reservation.Reservation) {
	n.send(ctx, r, "Nueva reserva :tennis:", colorBooked)
}

func (n *ReservationNotifier) ReservationCancelled(ctx context.Context, r reservation.Reservation) {
	n.send(ctx, r, "Reserva cancelada :negative_squared_cross_mark:", colorCancelled)
}

func (n *ReservationNotifier) send(ctx context.Context, r reservation.Reservation, title string, color int) {
	user := "Sin usuario"

	if r.UserID != nil {
		user = strconv.FormatInt(*r.UserID, 10)
	}

	embed := Embed{
		Type:  "rich",
		Title: title,
		Color: color,
		Fields: []EmbedField{
			{Name: "Pista", Value: strconv.FormatInt(r.CourtID, 10), Inline: true},
			{Name: "Fecha", Value: r.StartTime.Format(time.DateOnly), Inline: true},
			{Name: "Horario", Value: r.StartTime.Format("15:04") + "-" + r.EndTime().Format("15:04"), Inline: true},
			{Name: "Duración", Value: fmt.Sprintf("%d min", r.Duration), Inline: true},
			{Name: "Precio", Value: fmt.Sprintf("%.2f €", r.Price), Inline: true},
			{Name: "Usuario", Value: user, Inline: true},
		},
	}

	err := n.client.SendMessage(ctx, n.channelID, Message{Embeds: []Embed{embed}})

	if err != nil {
		n.logger.Warn("failed to send reservation notification",
			zap.Int64("reservationId", r.ID),
			zap.String("title", title),
			zap.Error(err),
		)
	}
}

// Nop drops every event. Used when no Discord channel is configured.
type Nop struct{}

func (Nop) ReservationCreated(context.Context, reservation.Reservation) {}

func (Nop) ReservationCancelled(context.Context, reservation.Reservation) {}
