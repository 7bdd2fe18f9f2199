package router

import (
	bookingHandler "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/handler"
	cabinHandler "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/handler"
	guestHandler "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/handler"
	settingHandler "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/handler"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(
	app *fiber.App,
	handlerBooking *bookingHandler.BookingHandler,
	handlerCabin *cabinHandler.CabinHandler,
	handlerSetting *settingHandler.SettingHandler,
	handlerGuest *guestHandler.GuestHandler,
	m *middleware.Middleware,
) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")
	v1 := Api.Group("/v1")

	// bookings, admin surface
	v1.Get("/bookings", m.ValidateToken, m.RequireAdmin, handlerBooking.ShowBookings)
	v1.Post("/bookings", m.ValidateToken, m.RequireAdmin, handlerBooking.CreateBooking)
	v1.Delete("/bookings", m.ValidateToken, m.RequireAdmin, handlerBooking.RemoveAllBookings)
	v1.Get("/bookings/after-date", m.ValidateToken, m.RequireAdmin, handlerBooking.ShowBookingsAfterDate)
	v1.Get("/bookings/recent-stays", m.ValidateToken, m.RequireAdmin, handlerBooking.ShowRecentStays)
	v1.Get("/bookings/today-activity", m.ValidateToken, m.RequireAdmin, handlerBooking.ShowTodayActivity)

	// bookings, owner surface
	v1.Get("/bookings/me", m.ValidateToken, handlerBooking.ShowMyBookings)
	v1.Post("/bookings/me", m.ValidateToken, handlerBooking.CreateMyBooking)
	v1.Get("/bookings/me/:id", m.ValidateToken, handlerBooking.ShowMyBooking)
	v1.Put("/bookings/me/:id", m.ValidateToken, handlerBooking.UpdateBooking)
	v1.Delete("/bookings/me/:id", m.ValidateToken, handlerBooking.RemoveBooking)

	// booked dates are public, the booking form needs them before login
	v1.Get("/bookings/booked-dates/:cabinId", handlerBooking.ShowBookedDates)

	v1.Get("/bookings/:id", m.ValidateToken, m.RequireAdmin, handlerBooking.ShowBooking)
	v1.Put("/bookings/:id", m.ValidateToken, m.RequireAdmin, handlerBooking.UpdateBooking)
	v1.Delete("/bookings/:id", m.ValidateToken, m.RequireAdmin, handlerBooking.RemoveBooking)

	// cabins, reads are public
	v1.Get("/cabins", handlerCabin.ShowCabins)
	v1.Get("/cabins/:id", handlerCabin.ShowCabin)
	v1.Post("/cabins", m.ValidateToken, m.RequireAdmin, handlerCabin.CreateCabin)
	v1.Put("/cabins/:id", m.ValidateToken, m.RequireAdmin, handlerCabin.UpdateCabin)
	v1.Delete("/cabins/:id", m.ValidateToken, m.RequireAdmin, handlerCabin.RemoveCabin)
	v1.Delete("/cabins", m.ValidateToken, m.RequireAdmin, handlerCabin.RemoveAllCabins)

	// settings
	v1.Get("/settings", handlerSetting.ShowSetting)
	v1.Post("/settings", m.ValidateToken, m.RequireAdmin, handlerSetting.CreateSetting)
	v1.Put("/settings", m.ValidateToken, m.RequireAdmin, handlerSetting.UpdateSetting)

	// guests
	v1.Get("/guests", m.ValidateToken, m.RequireAdmin, handlerGuest.ShowGuests)
	v1.Post("/guests", m.ValidateToken, m.RequireAdmin, handlerGuest.CreateGuest)
	v1.Post("/guests/bulk", m.ValidateToken, m.RequireAdmin, handlerGuest.CreateGuestsBulk)
	v1.Delete("/guests", m.ValidateToken, m.RequireAdmin, handlerGuest.RemoveAllGuests)
	v1.Get("/guests/:id", m.ValidateToken, m.RequireAdmin, handlerGuest.ShowGuest)
	v1.Put("/guests/:id", m.ValidateToken, m.RequireAdmin, handlerGuest.UpdateGuest)
	v1.Delete("/guests/:id", m.ValidateToken, m.RequireAdmin, handlerGuest.RemoveGuest)

	return app

}
