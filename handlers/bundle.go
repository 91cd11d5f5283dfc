package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Document endpoints
	RenderDocumentHandler gin.HandlerFunc

	// Deprecated draft endpoint
	GenerateDraftHandler gin.HandlerFunc
}
