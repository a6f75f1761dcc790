package controllers

import (
	"errors"
	"fbs/src/db"
	"fbs/src/models"
	"fbs/src/types"
	"fbs/src/utils"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func AuthLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	var user models.User
	if err = db.
		Model(&models.User{}).
		Where(&models.User{Email: body.Email}).
		First(&user).
		Error; err != nil {
		log.Printf("error: %s\n", err.Error())
		return nil, http.StatusNotFound, errors.New("account not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
		return nil, http.StatusUnauthorized, errors.New("invalid credentials")
	}

	if err := db.
		Model(&models.User{}).
		Where("id", user.ID).
		Update("last_active", time.Now()).
		Error; err != nil {
		log.Printf("Error updating last_active for user [%d]: %s\n", user.ID, err.Error())
	}

	jwt, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		log.Printf("Error generating token: %s\n", err.Error())
		return nil, http.StatusInternalServerError, errors.New("could not complete login")
	}
	return &jwt, http.StatusOK, nil
}

func AuthRegister(ctx *gin.Context) (status int, err error) {
	secret := os.Getenv("ADMIN_SIGNUP_SECRET")
	if secret == "" || ctx.GetHeader("x-secret") != secret {
		return http.StatusForbidden, errors.New("registration is not open")
	}

	var body types.RegisterAdminRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return http.StatusBadRequest, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %s\n", err.Error())
		return http.StatusInternalServerError, errors.New("could not complete registration")
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.
			Model(&models.User{}).
			Where(&models.User{Email: body.Email}).
			First(&existing).
			Error
		if err == nil {
			return errors.New("account already exists")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         "admin",
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		log.Printf("Error registering admin: %s\n", err.Error())
		return http.StatusBadRequest, err
	}
	return http.StatusCreated, nil
}
