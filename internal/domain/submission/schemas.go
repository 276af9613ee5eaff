package submission

var (
	yesNo = []string{"Yes", "No"}

	inquiryStatuses     = []string{"new", "pending", "responded", "closed"}
	applicationStatuses = []string{"pending", "reviewed", "accepted", "rejected"}
	appointmentStatuses = []string{"pending", "confirmed", "completed", "cancelled"}

	resumeMIMETypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	imageDocMIMETypes = []string{
		"application/pdf",
		"image/jpeg",
		"image/png",
	}
)

var Contacts = Schema{
	Slug:  "contacts",
	Type:  "contact",
	Label: "Contact",
	IDKey: "contactId",
	Fields: []Field{
		{Name: "name", Kind: KindText, Column: ColumnName, Required: true, Min: 2, Max: 100},
		{Name: "email", Kind: KindEmail, Column: ColumnEmail, Required: true},
		{Name: "phone", Kind: KindPhone, Column: ColumnPhone, Required: true, Min: 10, Max: 15},
		{Name: "subject", Kind: KindText, Required: true, Min: 5, Max: 200},
		{Name: "message", Kind: KindText, Required: true, Min: 10, Max: 2000},
		{Name: "recaptchaToken", Kind: KindText, Required: true},
	},
	Statuses:      inquiryStatuses,
	InitialStatus: "new",
	Search: []SearchField{
		{Name: "name", Column: ColumnName},
		{Name: "email", Column: ColumnEmail},
		{Name: "subject"},
		{Name: "message"},
	},
	Filters: []Filter{
		{Param: "status", Column: "status"},
		{Param: "isSpam", Column: "is_spam", Bool: true},
	},
	DateColumn: ColumnCreatedAt,
	CSVColumns: []CSVColumn{
		{Header: "id", Source: "id"},
		{Header: "name", Source: "name"},
		{Header: "email", Source: "email"},
		{Header: "phone", Source: "phone"},
		{Header: "subject", Source: "subject"},
		{Header: "message", Source: "message"},
		{Header: "status", Source: "status"},
		{Header: "isSpam", Source: "isSpam"},
		{Header: "createdAt", Source: "createdAt"},
		{Header: "updatedAt", Source: "updatedAt"},
	},
	HasSpamFlag: true,
}

var Appointments = Schema{
	Slug:  "appointments",
	Type:  "appointment",
	Label: "Appointment",
	IDKey: "appointmentId",
	Fields: []Field{
		{Name: "name", Kind: KindText, Column: ColumnName, Required: true, Min: 2, Max: 100},
		{Name: "email", Kind: KindEmail, Column: ColumnEmail, Required: true},
		{Name: "phone", Kind: KindPhone, Column: ColumnPhone, Required: true, Min: 10, Max: 15},
		{Name: "date", Kind: KindDate, Column: ColumnScheduledAt, Required: true, Future: true},
		{Name: "time", Kind: KindText, Required: true, Pattern: `^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`},
		{Name: "category", Kind: KindEnum, Required: true, Options: []string{
			"Real Estate Consultation", "Mortgage Services", "Home Improvement", "Tax and Accounting", "Other",
		}},
		{Name: "preference", Kind: KindEnum, Required: true, Options: []string{
			"In-Person Meeting", "Virtual", "Hybrid",
		}},
		{Name: "message", Kind: KindText, Max: 2000},
	},
	Statuses:      appointmentStatuses,
	InitialStatus: "pending",
	Search: []SearchField{
		{Name: "name", Column: ColumnName},
		{Name: "email", Column: ColumnEmail},
		{Name: "category"},
		{Name: "message"},
	},
	Filters: []Filter{
		{Param: "status", Column: "status"},
		{Param: "category"},
		{Param: "preference"},
	},
	DateColumn: ColumnScheduledAt,
	CSVColumns: []CSVColumn{
		{Header: "id", Source: "id"},
		{Header: "name", Source: "name"},
		{Header: "email", Source: "email"},
		{Header: "phone", Source: "phone"},
		{Header: "date", Source: "date"},
		{Header: "time", Source: "time"},
		{Header: "category", Source: "category"},
		{Header: "preference", Source: "preference"},
		{Header: "message", Source: "message"},
		{Header: "status", Source: "status"},
		{Header: "createdAt", Source: "createdAt"},
	},
}

var JobApplications = Schema{
	Slug:  "job-applications",
	Type:  "job_application",
	Label: "Job application",
	IDKey: "applicationId",
	Fields: []Field{
		{Name: "name", Kind: KindText, Column: ColumnName, Required: true, Min: 2, Max: 100},
		{Name: "email", Kind: KindEmail, Column: ColumnEmail, Required: true},
		{Name: "phone", Kind: KindPhone, Column: ColumnPhone, Required: true, Min: 10, Max: 15},
		{Name: "position", Kind: KindText},
		{Name: "timeZones", Kind: KindEnum, Required: true, Options: yesNo},
		{Name: "startupExperience", Kind: KindEnum, Required: true, Options: yesNo},
		{Name: "workArrangement", Kind: KindEnum, Required: true, Options: []string{
			"Full-time", "Part-time", "Contract", "Freelance",
		}},
		{Name: "workSetting", Kind: KindEnum, Required: true, Options: []string{
			"Remote", "On-site", "Hybrid",
		}},
		{Name: "availability", Kind: KindEnum, Required: true, Options: []string{
			"Immediately", "2 weeks", "1 month", "2-3 months", "3+ months",
		}},
		{Name: "compensation", Kind: KindText, Required: true, Min: 1},
		{Name: "yearsExperience", Kind: KindEnum, Required: true, Options: []string{
			"0-1 years", "1-3 years", "3-5 years", "5-10 years", "10+ years",
		}},
		{Name: "technicalSkills", Kind: KindMulti, Required: true, Options: []string{
			"Frontend Development", "Backend Development", "Full-stack Development",
			"UI/UX Design", "Mobile App Development", "Database Management",
			"DevOps", "Quality Assurance", "Other",
		}},
		{Name: "programmingLanguages", Kind: KindMulti, Required: true, Options: []string{
			"Angular", "React", "Django", "Node.js", "Flutter", "React Native",
			"Kotlin", "Swift", "HTML/CSS/JavaScript", "TypeScript", "PHP", "Python",
			"MongoDB", "MySQL", "PostgreSQL", "AWS", "Firebase", "Figma", "Jira",
			"API Development", "Cloud Development", "CI/CD", "Version Control", "Other",
		}},
		{Name: "portfolioLinks", Kind: KindText},
		{Name: "pastProjects", Kind: KindText},
		{Name: "certifications", Kind: KindText},
		{Name: "recentProject", Kind: KindText},
		{Name: "whyWorkHere", Kind: KindText, Required: true, Min: 10},
		{Name: "referral", Kind: KindText},
		{Name: "jobSlug", Kind: KindText},
	},
	Statuses:      applicationStatuses,
	InitialStatus: "pending",
	Search: []SearchField{
		{Name: "name", Column: ColumnName},
		{Name: "email", Column: ColumnEmail},
	},
	Filters: []Filter{
		{Param: "status", Column: "status"},
		{Param: "position"},
	},
	DateColumn: ColumnCreatedAt,
	Attachments: []Attachment{
		{Field: "resume", Kind: AttachmentResume, Dir: "resumes", Route: "resume", Required: true, MIMETypes: resumeMIMETypes},
	},
	CSVColumns: []CSVColumn{
		{Header: "id", Source: "id"},
		{Header: "name", Source: "name"},
		{Header: "email", Source: "email"},
		{Header: "phone", Source: "phone"},
		{Header: "position", Source: "position"},
		{Header: "workArrangement", Source: "workArrangement"},
		{Header: "workSetting", Source: "workSetting"},
		{Header: "availability", Source: "availability"},
		{Header: "yearsExperience", Source: "yearsExperience"},
		{Header: "status", Source: "status"},
		{Header: "createdAt", Source: "createdAt"},
	},
}

var AgentApplications = Schema{
	Slug:  "agent-applications",
	Type:  "agent_application",
	Label: "Agent application",
	IDKey: "applicationId",
	Fields: []Field{
		{Name: "name", Kind: KindText, Column: ColumnName, Required: true, Min: 2, Max: 100},
		{Name: "email", Kind: KindEmail, Column: ColumnEmail, Required: true},
		{Name: "phone", Kind: KindPhone, Column: ColumnPhone, Required: true, Min: 10, Max: 15},
		{Name: "licenseStatus", Kind: KindEnum, Required: true, Options: []string{
			"Licensed", "Inactive", "Expired", "Pre-licensing", "None",
		}},
		{Name: "licenseNumber", Kind: KindText},
		{Name: "licensedStates", Kind: KindText},
		{Name: "yearsExperience", Kind: KindEnum, Required: true, Options: []string{
			"0-1 years", "1-3 years", "3-5 years", "5-10 years", "10+ years",
		}},
		{Name: "currentBrokerage", Kind: KindText},
		{Name: "areasOfExpertise", Kind: KindMulti, Options: []string{
			"Real Estate", "Mortgage", "Tax & Accounting", "Insurance", "Home Improvement", "Others",
		}},
		{Name: "availability", Kind: KindEnum, Required: true, Options: []string{
			"Full-time", "Part-time", "Both",
		}},
		{Name: "workEligibility", Kind: KindEnum, Required: true, Options: []string{
			"US Citizen", "Permanent Resident", "H1B Visa", "TN Visa", "Other Visa",
		}},
		{Name: "howDidYouHear", Kind: KindEnum, Required: true, Options: []string{
			"Online Search", "Social Media", "Referral", "Real Estate Website", "Advertisement", "Other",
		}},
		{Name: "referrerName", Kind: KindText},
	},
	Statuses:      applicationStatuses,
	InitialStatus: "pending",
	Search: []SearchField{
		{Name: "name", Column: ColumnName},
		{Name: "email", Column: ColumnEmail},
	},
	Filters: []Filter{
		{Param: "status", Column: "status"},
		{Param: "licenseStatus"},
	},
	DateColumn: ColumnCreatedAt,
	Attachments: []Attachment{
		{Field: "resume", Kind: AttachmentResume, Dir: "resumes", Route: "resume", Required: true, MIMETypes: resumeMIMETypes},
		{Field: "license", Kind: AttachmentLicense, Dir: "licenses", Route: "license", MIMETypes: imageDocMIMETypes},
		{Field: "idCard", Kind: AttachmentIDCard, Dir: "ids", Route: "id-card", MIMETypes: imageDocMIMETypes},
	},
	CSVColumns: []CSVColumn{
		{Header: "id", Source: "id"},
		{Header: "name", Source: "name"},
		{Header: "email", Source: "email"},
		{Header: "phone", Source: "phone"},
		{Header: "licenseStatus", Source: "licenseStatus"},
		{Header: "yearsExperience", Source: "yearsExperience"},
		{Header: "availability", Source: "availability"},
		{Header: "workEligibility", Source: "workEligibility"},
		{Header: "status", Source: "status"},
		{Header: "createdAt", Source: "createdAt"},
	},
}

var InsuranceQuotes = Schema{
	Slug:  "insurance-quotes",
	Type:  "insurance_quote",
	Label: "Insurance quote",
	IDKey: "quoteId",
	Fields: []Field{
		{Name: "fullName", Kind: KindText, Column: ColumnName, Required: true, Min: 2, Max: 100},
		{Name: "dateOfBirth", Kind: KindDate, Required: true},
		{Name: "gender", Kind: KindEnum, Required: true, Options: []string{"Male", "Female", "Not Specified"}},
		{Name: "email", Kind: KindEmail, Column: ColumnEmail, Required: true},
		{Name: "phone", Kind: KindPhone, Column: ColumnPhone, Required: true, Min: 10, Max: 15},
		{Name: "dlNumber", Kind: KindText, Required: true},
		{Name: "dlState", Kind: KindText},
		{Name: "ageLicensed", Kind: KindNumber},
		{Name: "dlStatus", Kind: KindEnum, Required: true, Options: []string{
			"Valid", "Permit", "Expired", "Suspended", "Cancelled", "Permanently Revoked",
		}},
		{Name: "licenseSuspendedYears", Kind: KindEnum, Required: true, Options: yesNo},
		{Name: "primaryAddress", Kind: KindText, Required: true},
		{Name: "yearsAtAddress", Kind: KindNumber, Required: true},
		{Name: "monthsAtAddress", Kind: KindNumber},
		{Name: "previousAddress", Kind: KindText},
		{Name: "maritalStatus", Kind: KindEnum, Required: true, Options: []string{
			"Single", "Married", "Domestic Partner", "Divorced", "Widowed", "Separated",
		}},
		{Name: "occupation", Kind: KindText, Required: true},
		{Name: "military", Kind: KindEnum, Required: true, Options: yesNo},
		{Name: "paperless", Kind: KindEnum, Required: true, Options: yesNo},

		// Co-applicant
		{Name: "coApplicantRelationship", Kind: KindEnum, Options: []string{
			"Spouse", "Child", "Parent", "Domestic Partner", "Relative", "Others",
		}},
		{Name: "coApplicantFullName", Kind: KindText},
		{Name: "coApplicantDOB", Kind: KindDate},
		{Name: "coApplicantDLNumber", Kind: KindText},
		{Name: "coApplicantMilitary", Kind: KindEnum, Options: yesNo},

		// Auto section
		{Name: "priorCarrier", Kind: KindText},
		{Name: "yearsWithPrior", Kind: KindNumber},
		{Name: "priorExpirationDate", Kind: KindDate},
		{Name: "newEffectiveDate", Kind: KindDate},
		{Name: "vin", Kind: KindText, Required: true},
		{Name: "datePurchased", Kind: KindDate, Required: true},
		{Name: "vehicleUse", Kind: KindText, Required: true},
		{Name: "milesPerDay", Kind: KindNumber},
		{Name: "ownershipType", Kind: KindText},
		{Name: "bodilyInjury", Kind: KindEnum, Options: []string{"State Minimum", "25/50", "50/100", "100/300"}},
		{Name: "propertyDamage", Kind: KindEnum, Options: []string{"State Minimum", "25000", "50000", "100000", "250000"}},
		{Name: "uninsuredMotor", Kind: KindEnum, Options: yesNo},
		{Name: "comprehensiveDeduction", Kind: KindEnum, Options: []string{
			"No coverage", "$0", "$50", "$100", "$200", "$500", "$1000", "$2000", "$2500",
		}},
		{Name: "collisionDeduction", Kind: KindEnum, Options: []string{
			"No coverage", "$0", "$50", "$100", "$200", "$500", "$1000", "$2000", "$2500",
		}},
		{Name: "towingCoverage", Kind: KindText},
		{Name: "rentalCoverage", Kind: KindText},

		// Property section
		{Name: "propertyAddress", Kind: KindText, Required: true},
		{Name: "propertyPriorCarrier", Kind: KindText},
		{Name: "propertyPurchaseDate", Kind: KindDate},
		{Name: "currentPolicyExpiration", Kind: KindDate},
		{Name: "yearsWithPriorPolicy", Kind: KindNumber},
		{Name: "yearsContinuousPolicy", Kind: KindNumber},
		{Name: "newPropertyEffectiveDate", Kind: KindDate},
		{Name: "dwellingUsage", Kind: KindEnum, Required: true, Options: []string{
			"Primary Home", "Secondary Home", "Seasonal Home", "Farm", "Rental Property", "Commercial Property",
		}},
		{Name: "occupancyType", Kind: KindEnum, Required: true, Options: []string{
			"Owner Occupied", "Renter Occupied", "Unoccupied", "Vacant", "Business",
		}},
		{Name: "foundationType", Kind: KindEnum, Required: true, Options: []string{
			"Basement - Finished", "Basement - Partially Finished", "Basement - Unfinished",
			"Crawl Space - Enclosed", "Crawl Space - Open", "Slab", "Piers",
			"Pilings/stilts", "Hillside Foundation", "Other",
		}},
		{Name: "roofType", Kind: KindEnum, Required: true, Options: []string{
			"Architectural Shingles", "Asphalt Shingles", "Composition", "Copper",
			"Corrugated Steel", "Fiberglass", "Foam", "Gravel", "Metal", "Plastic",
			"Tar", "Slate", "Other",
		}},
		{Name: "additionalInfo", Kind: KindText},
	},
	Statuses:      inquiryStatuses,
	InitialStatus: "new",
	Search: []SearchField{
		{Name: "fullName", Column: ColumnName},
		{Name: "email", Column: ColumnEmail},
		{Name: "phone", Column: ColumnPhone},
	},
	Filters: []Filter{
		{Param: "status", Column: "status"},
		{Param: "dwellingUsage"},
		{Param: "occupancyType"},
	},
	DateColumn: ColumnCreatedAt,
	CSVColumns: []CSVColumn{
		{Header: "id", Source: "id"},
		{Header: "fullName", Source: "name"},
		{Header: "email", Source: "email"},
		{Header: "phone", Source: "phone"},
		{Header: "dlNumber", Source: "dlNumber"},
		{Header: "maritalStatus", Source: "maritalStatus"},
		{Header: "vin", Source: "vin"},
		{Header: "propertyAddress", Source: "propertyAddress"},
		{Header: "dwellingUsage", Source: "dwellingUsage"},
		{Header: "occupancyType", Source: "occupancyType"},
		{Header: "status", Source: "status"},
		{Header: "createdAt", Source: "createdAt"},
	},
}

var HomeImprovementQuotes = Schema{
	Slug:  "home-improvement-quotes",
	Type:  "home_improvement_quote",
	Label: "Home improvement quote",
	IDKey: "quoteId",
	Fields: []Field{
		{Name: "helpType", Kind: KindMulti, Required: true},
		{Name: "installReplaceItem", Kind: KindMulti, Required: true},
		{Name: "propertyType", Kind: KindEnum, Required: true, Options: []string{"residential", "commercial"}},
		{Name: "timeline", Kind: KindText, Required: true},
		{Name: "projectDescription", Kind: KindText},
		{Name: "areasOfWork", Kind: KindMulti, Required: true},
		{Name: "address", Kind: KindText, Required: true, Min: 5},
		{Name: "phoneNumber", Kind: KindPhone, Column: ColumnPhone, Required: true, Pattern: `^\(\d{3}\) \d{3}-\d{4}$`},
		{Name: "textUpdates", Kind: KindBool},
		{Name: "name", Kind: KindText, Column: ColumnName, Required: true, Min: 2, Max: 100},
		{Name: "email", Kind: KindEmail, Column: ColumnEmail, Required: true},
		{Name: "projectUpdates", Kind: KindBool},
	},
	Statuses:      inquiryStatuses,
	InitialStatus: "new",
	Search: []SearchField{
		{Name: "name", Column: ColumnName},
		{Name: "email", Column: ColumnEmail},
		{Name: "phoneNumber", Column: ColumnPhone},
	},
	Filters: []Filter{
		{Param: "status", Column: "status"},
		{Param: "propertyType"},
	},
	DateColumn: ColumnCreatedAt,
	CSVColumns: []CSVColumn{
		{Header: "id", Source: "id"},
		{Header: "name", Source: "name"},
		{Header: "email", Source: "email"},
		{Header: "phone", Source: "phone"},
		{Header: "propertyType", Source: "propertyType"},
		{Header: "timeline", Source: "timeline"},
		{Header: "address", Source: "address"},
		{Header: "areasOfWork", Source: "areasOfWork"},
		{Header: "status", Source: "status"},
		{Header: "createdAt", Source: "createdAt"},
	},
}

var PropertyInquiries = Schema{
	Slug:  "property-inquiries",
	Type:  "property_inquiry",
	Label: "Property inquiry",
	IDKey: "inquiryId",
	Fields: []Field{
		{Name: "name", Kind: KindText, Column: ColumnName, Required: true, Min: 2, Max: 100},
		{Name: "phone", Kind: KindPhone, Column: ColumnPhone, Required: true, Min: 10, Max: 15},
		{Name: "email", Kind: KindEmail, Column: ColumnEmail},
		{Name: "preferredContact", Kind: KindEnum, Required: true, Options: []string{
			"Phone call", "Text message", "Email",
		}},
		{Name: "realEstateNeeds", Kind: KindMulti, Options: []string{
			"Buying a home", "Selling a home", "Renting a home/apartment",
			"Buying land", "Selling land", "Commercial property",
		}},
		{Name: "propertyType", Kind: KindMulti, Options: []string{
			"Single-family home", "Multi-family property", "Condo/Apartment",
			"New construction", "Land/Lot",
		}},
		{Name: "budgetRange", Kind: KindText},
		{Name: "timeline", Kind: KindEnum, Options: []string{
			"Immediately (within 1 month)", "Within 1-3 months", "More than 3 months", "No preference",
		}},
		{Name: "locations", Kind: KindText},
		{Name: "purchaseType", Kind: KindEnum, Required: true, Options: []string{
			"Cash purchase", "Mortgage loan", "Refinance",
		}},
		{Name: "loanOfficerAssistance", Kind: KindEnum, Required: true, Options: []string{"Yes", "No", "Maybe"}},
		{Name: "concerns", Kind: KindText},
		{Name: "investmentInterest", Kind: KindMulti, Options: []string{
			"Residential investments", "Commercial investments",
			"Land development investments", "Not at this time",
		}},
		{Name: "insuranceInterest", Kind: KindMulti, Options: []string{
			"Homeowners Insurance", "Renters Insurance", "Auto Insurance",
			"Business/Commercial Insurance", "Not at this time",
		}},
		{Name: "additionalInfo", Kind: KindText},
	},
	Statuses:      inquiryStatuses,
	InitialStatus: "new",
	Search: []SearchField{
		{Name: "name", Column: ColumnName},
		{Name: "email", Column: ColumnEmail},
		{Name: "phone", Column: ColumnPhone},
	},
	Filters: []Filter{
		{Param: "status", Column: "status"},
		{Param: "purchaseType"},
		{Param: "preferredContact"},
	},
	DateColumn: ColumnCreatedAt,
	CSVColumns: []CSVColumn{
		{Header: "id", Source: "id"},
		{Header: "name", Source: "name"},
		{Header: "email", Source: "email"},
		{Header: "phone", Source: "phone"},
		{Header: "preferredContact", Source: "preferredContact"},
		{Header: "purchaseType", Source: "purchaseType"},
		{Header: "timeline", Source: "timeline"},
		{Header: "status", Source: "status"},
		{Header: "createdAt", Source: "createdAt"},
	},
}

// All lists every registered entity; routes and tests iterate it.
var All = []Schema{
	Contacts,
	Appointments,
	JobApplications,
	AgentApplications,
	InsuranceQuotes,
	HomeImprovementQuotes,
	PropertyInquiries,
}

// BySlug resolves a URL segment to its schema.
func BySlug(slug string) (Schema, bool) {
	for _, s := range All {
		if s.Slug == slug {
			return s, true
		}
	}
	return Schema{}, false
}
