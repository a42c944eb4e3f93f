package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dewrapsquare/dewrap-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetMenu(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		query := db.Order("created_at asc")

		// "all" mirrors the storefront's default filter button.
		if category := ctx.Query("category"); category != "" && category != "all" {
			query = query.Where("category = ?", category)
		}

		var items []models.MenuItem
		if result := query.Find(&items); result.Error != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch menu", result.Error)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func GetMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		itemId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
			return
		}

		var item models.MenuItem
		result := db.First(&item, itemId)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", result.Error)
			}
			return
		}

		ctx.JSON(http.StatusOK, item)
	}
}

func CreateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var item models.MenuItem
		if err := ctx.ShouldBindJSON(&item); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if err := db.Create(&item).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to create menu item", err)
			return
		}

		ctx.JSON(http.StatusCreated, item)
	}
}

func UpdateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		itemId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
			return
		}

		var item models.MenuItem
		if err := db.First(&item, itemId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
			}
			return
		}

		if err := ctx.ShouldBindJSON(&item); err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if err := db.Save(&item).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to update menu item", err)
			return
		}

		ctx.JSON(http.StatusOK, item)
	}
}

func DeleteMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		itemId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
			return
		}

		if result := db.Delete(&models.MenuItem{}, itemId); result.Error != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to delete menu item", result.Error)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully."})
	}
}

// getAWSUploader returns a configured S3 uploader.
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

func UploadMenuItemImage(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		itemId, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid menu item ID", err)
			return
		}

		var item models.MenuItem
		if err := db.First(&item, itemId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Menu item not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve menu item", err)
			}
			return
		}

		file, err := ctx.FormFile("image")
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "No file uploaded", err)
			return
		}

		f, err := file.Open()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to read uploaded file", err)
			return
		}
		defer f.Close()

		uploader, err := getAWSUploader()
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
			return
		}

		// Unique key so re-uploads never clobber each other.
		uniqueFilename := fmt.Sprintf("%d-%s-%s", itemId, time.Now().Format("20060102150405"), file.Filename)

		result, err := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
			Bucket:      aws.String(os.Getenv("AWS_BUCKET_NAME")),
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		if err != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, err)
			respondWithError(ctx, http.StatusInternalServerError, "Failed to upload image", err)
			return
		}

		item.ImageUrl = result.Location
		if err := db.Save(&item).Error; err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Image uploaded but not saved to menu item", err)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"message": "Image uploaded successfully",
			"url":     result.Location,
		})
	}
}
