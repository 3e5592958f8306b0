// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CheckEmailReq は/users/checkEmailエンドポイントのリクエストボディを表します。
type CheckEmailReq struct {
	Email string `json:"email"`
}

// RegisterReq は/users/registerエンドポイントのリクエストボディを表します。
// フィールド単位のバリデーション（形式・固定長・最低文字数）はusecase層が
// 固定の順序で行います。
type RegisterReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	MobileNo  string `json:"mobileNo"`
	Password  string `json:"password"`
}

// LoginReq は/users/loginエンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordReq は/users/reset-passwordエンドポイントのリクエストボディを表します。
type ResetPasswordReq struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdateProfileReq は/users/profileエンドポイントのリクエストボディを表します。
type UpdateProfileReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	MobileNo  string `json:"mobileNo"`
}

// UpdateAdminReq は/users/updateAdminエンドポイントのリクエストボディを表します。
type UpdateAdminReq struct {
	UserID uint `json:"userId" binding:"required"`
}
