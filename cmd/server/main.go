package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"bookstudy/config"
	"bookstudy/database"
	"bookstudy/router"

	"bookstudy/pkg/ai"

	bookCtrlImp "bookstudy/pkg/book/controllerImp"
	bookRepoImp "bookstudy/pkg/book/repositoryImp"
	bookSvcImp "bookstudy/pkg/book/serviceImp"

	kbCtrlImp "bookstudy/pkg/kb/controllerImp"
	kbEmbedder "bookstudy/pkg/kb/embedder"
	kbRepoImp "bookstudy/pkg/kb/repositoryImp"
	kbSvcImp "bookstudy/pkg/kb/serviceImp"

	asstCtrlImp "bookstudy/pkg/assistant/controllerImp"
	asstSvcImp "bookstudy/pkg/assistant/serviceImp"

	noteCtrlImp "bookstudy/pkg/notes/controllerImp"
	noteRepoImp "bookstudy/pkg/notes/repositoryImp"
	noteSvcImp "bookstudy/pkg/notes/serviceImp"

	healthCtrlImp "bookstudy/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Static("/static", "static")
	e.File("/", "static/index.html")

	// 4) LLM (mock fallback when no endpoint configured)
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("[main] no LLM endpoint configured, using mock client")
		llm = ai.NewMock()
	}

	// 5) KB: embedder + chunk index
	var emb kbSvcImp.Embedder
	if cfg.EmbEndpoint != "" {
		emb = kbEmbedder.New(cfg.EmbEndpoint, cfg.EmbAPIKey, cfg.EmbModel)
	}
	kbRepo := kbRepoImp.New(db)
	kbSvc := kbSvcImp.New(kbRepo, emb, cfg.ChunkSize, cfg.ChunkOverlap)

	// 6) Assistant
	asstSvc := asstSvcImp.New(llm, kbSvc)

	// 7) Books + notes
	bookRepo := bookRepoImp.New(db)
	bookSvc := bookSvcImp.New(bookRepo, bookSvcImp.NewRegexDetector())
	noteRepo := noteRepoImp.New()
	noteSvc := noteSvcImp.New(noteRepo, asstSvc, kbSvc)

	// 8) Controllers
	bookCtrl := bookCtrlImp.New(bookSvc, kbSvc, asstSvc, noteSvc, cfg.UploadDir)
	noteCtrl := noteCtrlImp.New(noteSvc, asstSvc, cfg.NotesAllowedDomains)
	asstCtrl := asstCtrlImp.New(asstSvc, bookSvc)
	kbCtrl := kbCtrlImp.New(kbSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 9) Router + start
	r := router.New(e, bookCtrl, noteCtrl, asstCtrl, kbCtrl, hCtrl)
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
