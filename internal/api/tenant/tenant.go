package tenant

import (
	"net/http"

	"cafe-platform/database"
	"cafe-platform/internal/domain/cafes"

	"github.com/gin-gonic/gin"
)

// Current loads the calling user's cafe. On a miss it writes the 404
// response itself and returns false so handlers can just bail out.
func Current(c *gin.Context) (cafes.Cafe, bool) {
	userID := c.GetUint("user_id")

	var cafe cafes.Cafe
	if err := database.DB.Where("user_id = ?", userID).First(&cafe).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe profile not found"})
		return cafes.Cafe{}, false
	}
	return cafe, true
}
