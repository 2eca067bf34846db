package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User 定义后台用户模型，角色决定后台页面与用户管理权限。
type User struct {
	gorm.Model
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FullName  string `gorm:"size:120"`
	AvatarURL string `gorm:"size:255"`
	Role      string `gorm:"size:20;default:editor"` // super_admin, editor
}

const (
	// RoleSuperAdmin 拥有全部后台能力，包括用户管理。
	RoleSuperAdmin = "super_admin"
	// RoleEditor 只能编辑站点内容。
	RoleEditor = "editor"
)

// IsValidRole 判断角色是否在固定枚举内。
func IsValidRole(role string) bool {
	return role == RoleSuperAdmin || role == RoleEditor
}

// RoleCanManageUsers 是用户管理功能的统一权限入口，所有后台操作都应经由
// 这里判断，而不是各处重复比较角色字符串。
func RoleCanManageUsers(role string) bool {
	return role == RoleSuperAdmin
}

// RoleCanEditContent 判断角色是否可以编辑站点内容。
func RoleCanEditContent(role string) bool {
	return role == RoleSuperAdmin || role == RoleEditor
}

// EnsureSuperAdmin 存在性检查：若提供的邮箱与密码均非空且不存在对应账号，
// 则创建一个 bcrypt 哈希的超级管理员。
func EnsureSuperAdmin(email, password string) error {
	trimmedEmail := strings.ToLower(strings.TrimSpace(email))
	trimmedPassword := strings.TrimSpace(password)
	if trimmedEmail == "" || trimmedPassword == "" {
		return nil
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	var existing User
	if err := DB.Where("email = ?", trimmedEmail).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(trimmedPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		return DB.Create(&User{
			Email:    trimmedEmail,
			Password: string(hashed),
			Role:     RoleSuperAdmin,
		}).Error
	}

	return nil
}
