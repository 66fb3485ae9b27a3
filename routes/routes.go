package routes

import (
	"github.com/julienschmidt/httprouter"

	"roteiro/auth"
	"roteiro/itinerary"
	"roteiro/middleware"
	"roteiro/ratelim"
	"roteiro/utils"
)

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/auth/register", rateLimiter.Limit(auth.Register))
	router.POST("/api/auth/login", rateLimiter.Limit(auth.Login))
	router.POST("/api/auth/logout", auth.Logout)
	router.POST("/api/auth/token/refresh", auth.RefreshToken)
	router.POST("/api/auth/otp/send", rateLimiter.Limit(auth.SendOTPHandler))
	router.POST("/api/auth/otp/verify", rateLimiter.Limit(auth.VerifyOTPHandler))
}

func AddTripRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/trips", middleware.Authenticate(itinerary.GetTrips))             //Fetch the user's itineraries
	router.POST("/api/trips", middleware.Authenticate(itinerary.CreateTrip))          //Create a trip (full reset)
	router.GET("/api/trips/latest", middleware.Authenticate(itinerary.GetLatestTrip)) //Most recently updated itinerary
	router.POST("/api/trips/import", middleware.Authenticate(itinerary.ImportTrip))   //Import a trip file
	router.GET("/api/trips/shared/:payload", middleware.OptionalAuth(itinerary.GetSharedTrip)) //Signed share link, auth optional

	router.GET("/api/trips/all/:id", middleware.Authenticate(itinerary.GetTrip))              //Fetch a single itinerary
	router.DELETE("/api/trips/all/:id", middleware.Authenticate(itinerary.DeleteTrip))        //Soft-delete an itinerary
	router.PUT("/api/trips/all/:id/title", middleware.Authenticate(itinerary.UpdateTitle))    //Rename (manual save)
	router.POST("/api/trips/all/:id/save", middleware.Authenticate(itinerary.SaveTrip))       //Explicit save, bypasses debounce
	router.PUT("/api/trips/all/:id/reorder", middleware.Authenticate(itinerary.ReorderDays))  //Drag-end content move

	router.POST("/api/trips/all/:id/days", middleware.Authenticate(itinerary.AddDay))
	router.DELETE("/api/trips/all/:id/days", middleware.Authenticate(itinerary.RemoveDay))
	router.PUT("/api/trips/all/:id/days/:index/location", middleware.Authenticate(itinerary.SetLocation))

	router.POST("/api/trips/all/:id/days/:index/expenses/:category", middleware.Authenticate(itinerary.AddExpense))
	router.PUT("/api/trips/all/:id/days/:index/expenses/:category/:eidx", middleware.Authenticate(itinerary.UpdateExpense))
	router.DELETE("/api/trips/all/:id/days/:index/expenses/:category/:eidx", middleware.Authenticate(itinerary.DeleteExpense))

	router.GET("/api/trips/all/:id/total", middleware.Authenticate(itinerary.GetTripTotal))
	router.GET("/api/trips/all/:id/export", middleware.Authenticate(itinerary.ExportTrip))
	router.GET("/api/trips/all/:id/pdf", middleware.Authenticate(itinerary.PrintTripPDF))
	router.GET("/api/trips/all/:id/qr", middleware.Authenticate(itinerary.TripQR))
}

func AddUtilityRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.GET("/api/csrf", rateLimiter.Limit(middleware.Authenticate(utils.CSRF)))
}
