package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddleware)

	mux := pat.New()

	// Users
	mux.Post("/user/sign_up", standardMiddleware.ThenFunc(app.userHandler.SignUp))
	mux.Post("/user/sign_in", standardMiddleware.ThenFunc(app.userHandler.SignIn))
	mux.Get("/user/:id", authMiddleware.ThenFunc(app.userHandler.GetUserByID))

	// Items
	mux.Post("/item", authMiddleware.ThenFunc(app.itemHandler.CreateItem))
	mux.Get("/item/:id", authMiddleware.ThenFunc(app.itemHandler.GetItemByID))
	mux.Get("/item/owner/:owner_id", authMiddleware.ThenFunc(app.itemHandler.GetItemsByOwner))
	mux.Put("/item/:id/status", authMiddleware.ThenFunc(app.itemHandler.UpdateStatus))
	mux.Post("/item/:id/image", authMiddleware.ThenFunc(app.itemHandler.UploadImage))

	// Offers
	mux.Post("/offer", authMiddleware.ThenFunc(app.offerHandler.CreateOffer))
	mux.Get("/offer/:id", authMiddleware.ThenFunc(app.offerHandler.GetOfferByID))
	mux.Get("/offer/item/:item_id", authMiddleware.ThenFunc(app.offerHandler.GetOffersByItemID))
	mux.Post("/offer/:id/accept", authMiddleware.ThenFunc(app.offerHandler.AcceptOffer))
	mux.Post("/offer/:id/reject", authMiddleware.ThenFunc(app.offerHandler.RejectOffer))
	mux.Post("/offer/:id/cancel", authMiddleware.ThenFunc(app.offerHandler.CancelOffer))

	// Jobs
	mux.Post("/job", authMiddleware.ThenFunc(app.jobHandler.CreateJob))
	mux.Get("/job/:id", authMiddleware.ThenFunc(app.jobHandler.GetJobByID))
	mux.Put("/job/:id/status", authMiddleware.ThenFunc(app.jobHandler.UpdateStatus))
	mux.Post("/job/:id/complete", authMiddleware.ThenFunc(app.jobHandler.CompleteJob))
	mux.Get("/job/active/:fixer_id/:client_id", authMiddleware.ThenFunc(app.jobHandler.HasActiveEngagement))

	// Reviews
	mux.Post("/review", authMiddleware.ThenFunc(app.reviewHandler.CreateReview))
	mux.Get("/review/user/:user_id", authMiddleware.ThenFunc(app.reviewHandler.GetReviewsByTarget))

	// Reputation
	mux.Get("/reputation/:user_id", authMiddleware.ThenFunc(app.reputationHandler.GetReputation))
	mux.Post("/reputation/:user_id/rating", authMiddleware.ThenFunc(app.reputationHandler.UpdateRating))
	mux.Put("/reputation/:user_id/verification", authMiddleware.ThenFunc(app.reputationHandler.UpdateVerification))

	// Progression (leaderboard first: pat matches in registration order)
	mux.Get("/progression/leaderboard/top", authMiddleware.ThenFunc(app.progressionHandler.Leaderboard))
	mux.Get("/progression/:user_id", authMiddleware.ThenFunc(app.progressionHandler.GetProgress))
	mux.Post("/progression/:user_id/xp", authMiddleware.ThenFunc(app.progressionHandler.AddXP))
	mux.Post("/progression/:user_id/login", authMiddleware.ThenFunc(app.progressionHandler.UpdateLoginStreak))

	// Badges
	mux.Get("/badge/user/:user_id", authMiddleware.ThenFunc(app.badgeHandler.GetUserBadges))
	mux.Post("/badge/user/:user_id", authMiddleware.ThenFunc(app.badgeHandler.AwardBadge))
	mux.Del("/badge/user/:user_id/:slug", authMiddleware.ThenFunc(app.badgeHandler.RevokeBadge))
	mux.Get("/badge/distributed", authMiddleware.ThenFunc(app.badgeHandler.ListDistributed))

	// Progress events
	mux.Get("/ws/progress", authMiddleware.ThenFunc(app.handleProgressWS))

	return mux
}
