package api

import (
	"net/http"

	"github.com/voxummah/newsdesk/app/cms"
	"github.com/voxummah/newsdesk/app/content"
	"github.com/voxummah/newsdesk/app/database"
	"github.com/voxummah/newsdesk/app/ghost"
	"github.com/voxummah/newsdesk/app/syndication"
	"github.com/voxummah/newsdesk/app/tasks"
)

type Handler struct {
	aggregator  *content.Aggregator
	ghostClient *ghost.Client
	articleRepo database.ArticleRepository
	tagRepo     database.TagRepository
	cmsService  *cms.Service
	scheduler   tasks.TaskSchedulerInterface
	generator   *Generator
	sources     []syndication.Source
	httpClient  *http.Client
	parser      *syndication.Parser
	extractor   *syndication.Extractor
	userAgent   string
}
