package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// supportedLanguages drives the language selector on the chat page
var supportedLanguages = map[string]string{
	"en": "English",
	"hi": "हिंदी",
	"ta": "தமிழ்",
	"te": "తెలుగు",
	"bn": "বাংলা",
	"mr": "मराठी",
}

// Index serves the chat UI page
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"app_name":        "Farmer Assist",
		"app_description": "Your AI Agriculture Assistant",
		"languages":       supportedLanguages,
	})
}
