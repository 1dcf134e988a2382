package session

import "github.com/healthboard/healthboard/internal/platform/auth"

// nationalUser is an entry in the static national user directory.
// Secrets are plaintext by documented contract; the system has no real
// security boundary.
type nationalUser struct {
	ID          string
	Email       string
	Secret      string
	DisplayName string
	Permissions []string
}

var nationalDirectory = []nationalUser{
	{
		ID:          "nat_001",
		Email:       "admin@minsa.gov.ao",
		Secret:      "admin123",
		DisplayName: "Administrador Nacional",
		Permissions: []string{"view_all", "manage_all", "reports", "analytics"},
	},
	{
		ID:          "nat_002",
		Email:       "supervisor@minsa.gov.ao",
		Secret:      "super123",
		DisplayName: "Supervisor Nacional",
		Permissions: []string{"view_all", "reports", "analytics"},
	},
}

// seedHospitalCredential is a pre-provisioned facility login honored even
// before the hospitals slot has ever been persisted.
type seedHospitalCredential struct {
	ID     string
	Name   string
	Email  string
	Secret string
}

var seedHospitalCredentials = []seedHospitalCredential{
	{ID: "HCL001", Name: "Hospital Central de Luanda", Email: "hospital.luanda@saude.gov.ao", Secret: "hospital123"},
	{ID: "HBG001", Name: "Hospital de Benguela", Email: "hospital.benguela@saude.gov.ao", Secret: "hospital123"},
	{ID: "HHB001", Name: "Hospital do Huambo", Email: "hospital.huambo@saude.gov.ao", Secret: "hospital123"},
}

// DirectoryEmails lists the login emails reserved by the national
// directory. Hospital registration refuses to reuse them.
func DirectoryEmails() []string {
	emails := make([]string, 0, len(nationalDirectory))
	for _, u := range nationalDirectory {
		emails = append(emails, u.Email)
	}
	return emails
}

func hospitalPermissions() []string {
	return []string{"view_hospital", "manage_hospital"}
}

func hospitalPrincipal(id, name, email string) Principal {
	return Principal{
		ID:           id,
		Email:        email,
		DisplayName:  "Gestor - " + name,
		Role:         auth.RoleHospital,
		HospitalID:   id,
		HospitalName: name,
		Permissions:  hospitalPermissions(),
	}
}
