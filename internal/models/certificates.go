package models

// UnitBeingLateCertificates — количество сертификатов за опоздание по пиццерии
// за один период.
type UnitBeingLateCertificates struct {
	UnitID                     UnitID `json:"unit_id"`
	UnitName                   string `json:"unit_name"`
	BeingLateCertificatesCount int    `json:"being_late_certificates_count"`
}

// BeingLateCertificatesTodayAndWeekBefore — пара «сегодня / неделю назад» по
// одной пиццерии; отсутствующие стороны считаются нулём.
type BeingLateCertificatesTodayAndWeekBefore struct {
	UnitID                      UnitID `json:"unit_id"`
	UnitName                    string `json:"unit_name"`
	CertificatesTodayCount      int    `json:"certificates_today_count"`
	CertificatesWeekBeforeCount int    `json:"certificates_week_before_count"`
}
