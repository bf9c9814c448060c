package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/kaungzawhein/thadingyut-voting/docs"
	v1 "github.com/kaungzawhein/thadingyut-voting/internal/api/handler/v1"
	"github.com/kaungzawhein/thadingyut-voting/internal/api/middleware"
	"github.com/kaungzawhein/thadingyut-voting/internal/config"
	"github.com/kaungzawhein/thadingyut-voting/internal/identity"
	"github.com/kaungzawhein/thadingyut-voting/internal/repository"
	"github.com/kaungzawhein/thadingyut-voting/internal/repository/dao"
	"github.com/kaungzawhein/thadingyut-voting/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	if conf.API.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler()
	candidateHandler := s.initCandidateHandler(db)
	voteHandler := s.initVoteHandler(db)
	finalHandler := s.initFinalHandler(db)
	s.MountHandlers(authHandler, candidateHandler, voteHandler, finalHandler)

	return s
}

func (s *Server) initAuthHandler() *v1.AuthHandler {
	verifier := identity.NewJWTVerifier(s.Config.Identity)
	svc := service.NewAuthService(verifier)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initCandidateHandler(db *gorm.DB) *v1.CandidateHandler {
	candidateDAO := dao.NewCandidateDAO(db)
	repo := repository.NewCandidateRepository(candidateDAO)
	svc := service.NewCandidateService(repo)
	handler := v1.NewCandidateHandler(svc)

	return handler
}

func (s *Server) initVoteHandler(db *gorm.DB) *v1.VoteHandler {
	voteDAO := dao.NewVoteDAO(db)
	repo := repository.NewVoteRepository(voteDAO)
	svc := service.NewVotingService(repo)
	handler := v1.NewVoteHandler(svc)

	return handler
}

func (s *Server) initFinalHandler(db *gorm.DB) *v1.FinalHandler {
	tokenDAO := dao.NewTokenDAO(db)
	repo := repository.NewTokenRepository(tokenDAO)
	candidateRepo := repository.NewCandidateRepository(dao.NewCandidateDAO(db))
	svc := service.NewFinalService(repo, candidateRepo)
	handler := v1.NewFinalHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, candidateHandler *v1.CandidateHandler, voteHandler *v1.VoteHandler, finalHandler *v1.FinalHandler) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)
		public.GET("/results", candidateHandler.HandleGetResults)
		public.GET("/final-candidates", finalHandler.HandleGetFinalCandidates)
	}

	voters := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifySession())
	{
		voters.GET("/candidates", candidateHandler.HandleGetCandidates)
		voters.GET("/lanterns", candidateHandler.HandleGetLanterns)
		voters.GET("/votes", voteHandler.HandleGetMyVotes)
		voters.POST("/votes", voteHandler.HandleCastVote)
		voters.POST("/votes/lantern", voteHandler.HandleCastLanternVote)
		voters.POST("/votes/final", finalHandler.HandleFinalVote)
		voters.POST("/tokens/status", finalHandler.HandleTokenStatus)
		voters.POST("/rewards/claim", finalHandler.HandleClaimReward)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Thadingyut Voting API"
	docs.SwaggerInfo.Description = "Festival voting with one-vote-per-identity and token-gated final round."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
