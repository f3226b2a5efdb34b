package model

import "lodge/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID                  = "id"
	FieldName                = "name"
	FieldPhone               = "phone"
	FieldEmail               = "email"
	FieldDocumentsFolderLink = "documents_folder_link"
)

type Customer struct {
	ID                  string `db:"id"`
	Name                string `db:"name"`
	Phone               string `db:"phone"`
	Email               string `db:"email"`
	DocumentsFolderLink string `db:"documents_folder_link"`
	model.Metadata
}
