package registry

func strPtr(s string) *string { return &s }

// SeedHospitals returns the fixed initial facility set. The login
// credentials here are also honored by the session gate's static seed
// directory, so these facilities can sign in before the hospitals slot has
// ever been persisted.
func SeedHospitals() []Hospital {
	return []Hospital{
		{
			ID: "HCL001", Name: "Hospital Central de Luanda", Province: "Luanda",
			Status: HospitalActive, PatientCount: 1234, CapacityPercent: 85,
			LoginEmail: "hospital.luanda@saude.gov.ao", LoginSecret: DefaultHospitalSecret,
			Contact: strPtr("+244 222 123 456"), Address: strPtr("Rua Major Kanhangulo, Luanda"),
			Director: strPtr("Dr. António Sebastião"),
		},
		{
			ID: "HBG001", Name: "Hospital de Benguela", Province: "Benguela",
			Status: HospitalActive, PatientCount: 987, CapacityPercent: 92,
			LoginEmail: "hospital.benguela@saude.gov.ao", LoginSecret: DefaultHospitalSecret,
			Contact: strPtr("+244 272 123 456"), Address: strPtr("Avenida Norton de Matos, Benguela"),
			Director: strPtr("Dr. Maria Fernandes"),
		},
		{
			ID: "HHB001", Name: "Hospital do Huambo", Province: "Huambo",
			Status: HospitalActive, PatientCount: 456, CapacityPercent: 67,
			LoginEmail: "hospital.huambo@saude.gov.ao", LoginSecret: DefaultHospitalSecret,
			Contact: strPtr("+244 241 123 456"), Address: strPtr("Rua Sá da Bandeira, Huambo"),
			Director: strPtr("Dr. Carlos Mendes"),
		},
		{
			ID: "HLB001", Name: "Hospital do Lobito", Province: "Benguela",
			Status: HospitalMaintenance, PatientCount: 234, CapacityPercent: 45,
			LoginEmail: "hospital.lobito@saude.gov.ao", LoginSecret: DefaultHospitalSecret,
			Contact: strPtr("+244 272 789 012"), Address: strPtr("Rua Robert Williams, Lobito"),
			Director: strPtr("Dr. Ana Costa"),
		},
		{
			ID: "HLG001", Name: "Hospital de Lubango", Province: "Huíla",
			Status: HospitalActive, PatientCount: 678, CapacityPercent: 78,
			LoginEmail: "hospital.lubango@saude.gov.ao", LoginSecret: DefaultHospitalSecret,
			Contact: strPtr("+244 261 123 456"), Address: strPtr("Avenida 4 de Fevereiro, Lubango"),
			Director: strPtr("Dr. João Silva"),
		},
	}
}

func SeedDiseases() []Disease {
	return []Disease{
		{ID: "1", Name: "Malária", CaseCount: 45, Trend: "+12%", Severity: SeverityHigh, Department: "Medicina Interna", LastUpdate: "2h atrás", HospitalID: "HCL001", Classification: ClassOutbreak},
		{ID: "2", Name: "Cólera", CaseCount: 8, Trend: "+25%", Severity: SeverityHigh, Department: "Urgências", LastUpdate: "1h atrás", HospitalID: "HCL001", Classification: ClassOutbreak},
		{ID: "3", Name: "Dengue", CaseCount: 23, Trend: "+15%", Severity: SeverityMedium, Department: "Pediatria", LastUpdate: "30min atrás", HospitalID: "HCL001", Classification: ClassOutbreak},
		{ID: "4", Name: "Febre Amarela", CaseCount: 3, Trend: "+100%", Severity: SeverityHigh, Department: "Urgências", LastUpdate: "1h atrás", HospitalID: "HCL001", Classification: ClassOutbreak},
		{ID: "5", Name: "Sarampo", CaseCount: 7, Trend: "+40%", Severity: SeverityMedium, Department: "Pediatria", LastUpdate: "2h atrás", HospitalID: "HCL001", Classification: ClassOutbreak},
		{ID: "6", Name: "COVID-19", CaseCount: 12, Trend: "-8%", Severity: SeverityMedium, Department: "Isolamento", LastUpdate: "2h atrás", HospitalID: "HCL001", Classification: ClassOutbreak},
		{ID: "7", Name: "Tuberculose", CaseCount: 15, Trend: "+10%", Severity: SeverityMedium, Department: "Pneumologia", LastUpdate: "3h atrás", HospitalID: "HCL001", Classification: ClassOutbreak},
		{ID: "8", Name: "Malária", CaseCount: 32, Trend: "+8%", Severity: SeverityHigh, Department: "Medicina Interna", LastUpdate: "1h atrás", HospitalID: "HBG001", Classification: ClassOutbreak},
		{ID: "9", Name: "Dengue", CaseCount: 18, Trend: "+20%", Severity: SeverityMedium, Department: "Pediatria", LastUpdate: "2h atrás", HospitalID: "HBG001", Classification: ClassOutbreak},
		{ID: "10", Name: "Hepatite A", CaseCount: 5, Trend: "+50%", Severity: SeverityMedium, Department: "Gastrenterologia", LastUpdate: "3h atrás", HospitalID: "HBG001", Classification: ClassOutbreak},
		{ID: "11", Name: "Meningite", CaseCount: 2, Trend: "+100%", Severity: SeverityHigh, Department: "Neurologia", LastUpdate: "1h atrás", HospitalID: "HBG001", Classification: ClassOutbreak},
		{ID: "12", Name: "Malária", CaseCount: 28, Trend: "+5%", Severity: SeverityHigh, Department: "Medicina Interna", LastUpdate: "2h atrás", HospitalID: "HHB001", Classification: ClassOutbreak},
		{ID: "13", Name: "Pneumonia", CaseCount: 14, Trend: "+18%", Severity: SeverityMedium, Department: "Pneumologia", LastUpdate: "1h atrás", HospitalID: "HHB001", Classification: ClassOutbreak},
		{ID: "14", Name: "Diarreia Aguda", CaseCount: 9, Trend: "+35%", Severity: SeverityMedium, Department: "Gastrenterologia", LastUpdate: "3h atrás", HospitalID: "HHB001", Classification: ClassOutbreak},
	}
}

func SeedPatients() []Patient {
	return []Patient{
		{ID: "1", Name: "João Silva", Age: 35, Gender: GenderMale, DiseaseName: "Malária", Status: PatientActive, AdmissionDate: "2024-06-10", HospitalID: "HCL001", Department: "Medicina Interna"},
		{ID: "2", Name: "Maria Santos", Age: 28, Gender: GenderFemale, DiseaseName: "Dengue", Status: PatientRecovered, AdmissionDate: "2024-06-08", HospitalID: "HCL001", Department: "Pediatria"},
		{ID: "3", Name: "Pedro Costa", Age: 42, Gender: GenderMale, DiseaseName: "Cólera", Status: PatientCritical, AdmissionDate: "2024-06-12", HospitalID: "HCL001", Department: "Urgências"},
		{ID: "4", Name: "Ana Ferreira", Age: 19, Gender: GenderFemale, DiseaseName: "Sarampo", Status: PatientActive, AdmissionDate: "2024-06-11", HospitalID: "HCL001", Department: "Pediatria"},
		{ID: "5", Name: "Carlos Mendes", Age: 56, Gender: GenderMale, DiseaseName: "Tuberculose", Status: PatientActive, AdmissionDate: "2024-06-09", HospitalID: "HCL001", Department: "Pneumologia"},
		{ID: "6", Name: "Luisa Campos", Age: 33, Gender: GenderFemale, DiseaseName: "Malária", Status: PatientActive, AdmissionDate: "2024-06-10", HospitalID: "HBG001", Department: "Medicina Interna"},
		{ID: "7", Name: "António Neto", Age: 45, Gender: GenderMale, DiseaseName: "Hepatite A", Status: PatientActive, AdmissionDate: "2024-06-11", HospitalID: "HBG001", Department: "Gastrenterologia"},
		{ID: "8", Name: "Sofia Rodrigues", Age: 12, Gender: GenderFemale, DiseaseName: "Dengue", Status: PatientRecovered, AdmissionDate: "2024-06-07", HospitalID: "HBG001", Department: "Pediatria"},
		{ID: "9", Name: "Manuel Pereira", Age: 38, Gender: GenderMale, DiseaseName: "Pneumonia", Status: PatientActive, AdmissionDate: "2024-06-10", HospitalID: "HHB001", Department: "Pneumologia"},
		{ID: "10", Name: "Rosa Cardoso", Age: 67, Gender: GenderFemale, DiseaseName: "Malária", Status: PatientCritical, AdmissionDate: "2024-06-12", HospitalID: "HHB001", Department: "Medicina Interna"},
	}
}

func SeedStaff() []Staff {
	return []Staff{
		{ID: "1", Name: "Dr. António Neto", Role: RoleDoctor, Department: "Medicina Interna", HospitalID: "HCL001", Shift: ShiftMorning, Phone: "+244 923 456 789", Email: "antonio.neto@hospital.ao", Status: StaffActive, Specialization: "Medicina Tropical", YearsExperience: 10},
		{ID: "2", Name: "Enf. Luisa Fernandes", Role: RoleNurse, Department: "Urgências", HospitalID: "HCL001", Shift: ShiftAfternoon, Phone: "+244 923 456 790", Email: "luisa.fernandes@hospital.ao", Status: StaffActive, Specialization: "Enfermagem", YearsExperience: 5},
		{ID: "3", Name: "Dr. Carlos Mendes", Role: RoleDoctor, Department: "Pediatria", HospitalID: "HCL001", Shift: ShiftNight, Phone: "+244 923 456 791", Email: "carlos.mendes@hospital.ao", Status: StaffActive, Specialization: "Pediatria Tropical", YearsExperience: 8},
		{ID: "4", Name: "Dr. Maria Silva", Role: RoleDoctor, Department: "Pneumologia", HospitalID: "HCL001", Shift: ShiftMorning, Phone: "+244 923 456 792", Email: "maria.silva@hospital.ao", Status: StaffActive, Specialization: "Doenças Respiratórias", YearsExperience: 12},
		{ID: "5", Name: "Dr. João Santos", Role: RoleDoctor, Department: "Medicina Interna", HospitalID: "HBG001", Shift: ShiftAfternoon, Phone: "+244 923 456 793", Email: "joao.santos@hospital.ao", Status: StaffActive, Specialization: "Medicina Interna", YearsExperience: 10},
		{ID: "6", Name: "Enf. Ana Costa", Role: RoleNurse, Department: "Pediatria", HospitalID: "HBG001", Shift: ShiftNight, Phone: "+244 923 456 794", Email: "ana.costa@hospital.ao", Status: StaffActive, Specialization: "Enfermagem", YearsExperience: 5},
		{ID: "7", Name: "Dr. Pedro Alves", Role: RoleDoctor, Department: "Gastrenterologia", HospitalID: "HBG001", Shift: ShiftMorning, Phone: "+244 923 456 795", Email: "pedro.alves@hospital.ao", Status: StaffActive, Specialization: "Hepatologia", YearsExperience: 7},
		{ID: "8", Name: "Dr. Sofia Pereira", Role: RoleDoctor, Department: "Pneumologia", HospitalID: "HHB001", Shift: ShiftAfternoon, Phone: "+244 923 456 796", Email: "sofia.pereira@hospital.ao", Status: StaffActive, Specialization: "Pneumologia", YearsExperience: 10},
		{ID: "9", Name: "Enf. Manuel Cardoso", Role: RoleNurse, Department: "Medicina Interna", HospitalID: "HHB001", Shift: ShiftNight, Phone: "+244 923 456 797", Email: "manuel.cardoso@hospital.ao", Status: StaffActive, Specialization: "Enfermagem", YearsExperience: 5},
	}
}

func SeedResources() []Resource {
	return []Resource{
		{ID: "1", Name: "Paracetamol 500mg", Kind: KindMedicine, Quantity: 5, Unit: "mg", Location: "Hospital Central de Luanda", Status: StockCritical, HospitalID: "HCL001", MinimumQuantity: 50, ExpiryDate: strPtr("2024-07-01"), Supplier: strPtr("Farmácia Central")},
		{ID: "2", Name: "Seringas 5ml", Kind: KindEquipment, Quantity: 50, Unit: "ml", Location: "Hospital Central de Luanda", Status: StockLow, HospitalID: "HCL001", MinimumQuantity: 100, ExpiryDate: strPtr("2024-06-30"), Supplier: strPtr("Equipamentos Hospitalares")},
		{ID: "3", Name: "Vacina Febre Amarela", Kind: KindMedicine, Quantity: 2, Unit: "ml", Location: "Hospital Central de Luanda", Status: StockCritical, HospitalID: "HCL001", MinimumQuantity: 20, ExpiryDate: strPtr("2024-06-30"), Supplier: strPtr("Vacinas Biológicas")},
		{ID: "4", Name: "Aspirina 100mg", Kind: KindMedicine, Quantity: 120, Unit: "mg", Location: "Hospital Central de Luanda", Status: StockActive, HospitalID: "HCL001", MinimumQuantity: 50, ExpiryDate: strPtr("2024-07-01"), Supplier: strPtr("Farmácia Central")},
		{ID: "5", Name: "Máscaras Cirúrgicas", Kind: KindMaterial, Quantity: 30, Unit: "unidades", Location: "Hospital Central de Luanda", Status: StockLow, HospitalID: "HCL001", MinimumQuantity: 100, ExpiryDate: strPtr("2024-06-30"), Supplier: strPtr("Equipamentos Hospitalares")},
		{ID: "6", Name: "Artemeter", Kind: KindMedicine, Quantity: 8, Unit: "mg", Location: "Hospital de Benguela", Status: StockCritical, HospitalID: "HBG001", MinimumQuantity: 30, ExpiryDate: strPtr("2024-07-01"), Supplier: strPtr("Laboratório Biológico")},
		{ID: "7", Name: "Soro Fisiológico", Kind: KindMaterial, Quantity: 25, Unit: "ml", Location: "Hospital de Benguela", Status: StockLow, HospitalID: "HBG001", MinimumQuantity: 50, ExpiryDate: strPtr("2024-06-30"), Supplier: strPtr("Equipamentos Hospitalares")},
		{ID: "8", Name: "Antibióticos", Kind: KindMedicine, Quantity: 45, Unit: "mg", Location: "Hospital de Benguela", Status: StockActive, HospitalID: "HBG001", MinimumQuantity: 40, ExpiryDate: strPtr("2024-07-01"), Supplier: strPtr("Laboratório Biológico")},
		{ID: "9", Name: "Cloroquina", Kind: KindMedicine, Quantity: 3, Unit: "mg", Location: "Hospital do Huambo", Status: StockCritical, HospitalID: "HHB001", MinimumQuantity: 25, ExpiryDate: strPtr("2024-07-01"), Supplier: strPtr("Laboratório Biológico")},
		{ID: "10", Name: "Luvas Descartáveis", Kind: KindMaterial, Quantity: 80, Unit: "unidades", Location: "Hospital do Huambo", Status: StockLow, HospitalID: "HHB001", MinimumQuantity: 100, ExpiryDate: strPtr("2024-06-30"), Supplier: strPtr("Equipamentos Hospitalares")},
		{ID: "11", Name: "Termômetros", Kind: KindEquipment, Quantity: 15, Unit: "unidades", Location: "Hospital do Huambo", Status: StockActive, HospitalID: "HHB001", MinimumQuantity: 10, ExpiryDate: strPtr("2024-07-01"), Supplier: strPtr("Equipamentos Hospitalares")},
	}
}
