package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody(c, code, message, nil),
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   errorBody(c, code, message, details),
	})
}

// errorBody echoes the caller's request id so a failed call can be
// correlated with its request log line.
func errorBody(c *gin.Context, code, message string, details any) gin.H {
	body := gin.H{
		"code":    code,
		"message": message,
	}
	if details != nil {
		body["details"] = details
	}
	if id := RequestID(c); id != "" {
		body["request_id"] = id
	}
	return body
}

// RequestID returns the caller-supplied request id header, if any.
func RequestID(c *gin.Context) string {
	return c.GetHeader("X-Request-ID")
}
