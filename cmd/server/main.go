package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"docqa/config"
	"docqa/database"
	"docqa/router"

	"docqa/pkg/ai"
	"docqa/pkg/answer"
	"docqa/pkg/embedder"

	indexRepoImp "docqa/pkg/index/repositoryImp"
	indexSvcImp "docqa/pkg/index/serviceImp"

	qaCtrlImp "docqa/pkg/qa/controllerImp"
	qaSvcImp "docqa/pkg/qa/serviceImp"

	healthCtrlImp "docqa/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) LLM (mock fallback when unconfigured)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("WARN: no LLM endpoint configured, using mock client")
		llm = ai.NewMock()
	}

	// 4) Embedder + index service
	emb := embedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	idxRepo := indexRepoImp.New(db)
	idxSvc := indexSvcImp.New(idxRepo, emb)

	// 5) Answerer + QA pipeline
	ans := answer.New(llm, answer.Mode(cfg.AnswerMode))
	qaSvc := qaSvcImp.New(idxSvc, ans, cfg.ChunkSize, cfg.ChunkOverlap, cfg.TopK)
	qaCtrl := qaCtrlImp.New(qaSvc, cfg.AnswerMode == "structured", cfg.MaxDownloadBytes)

	// 6) Health
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Echo + routes
	e := echo.New()
	e.Use(echoMiddleware.Recover())
	r := router.New(e, cfg.AuthToken, qaCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
