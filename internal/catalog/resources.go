package catalog

// Resource is a static directory entry pointing at external reading.
type Resource struct {
	Name        string
	URL         string
	Description string
}

// CaregiverResources are shown to parents and caregivers and included in the
// CSV export.
var CaregiverResources = []Resource{
	{
		Name:        "CDC Developmental Milestones",
		URL:         "https://www.cdc.gov/ncbddd/actearly/milestones/index.html",
		Description: "Age-by-age milestone checklists and when to act early.",
	},
	{
		Name:        "Understood.org for Families",
		URL:         "https://www.understood.org/en/families",
		Description: "Plain-language guides for learning and thinking differences.",
	},
	{
		Name:        "CHADD Parent Resources",
		URL:         "https://chadd.org/for-parents/overview/",
		Description: "ADHD-focused guidance, parent training and local chapters.",
	},
	{
		Name:        "AAP HealthyChildren",
		URL:         "https://www.healthychildren.org",
		Description: "Pediatrician-reviewed articles on development and behavior.",
	},
}

// EducatorResources are shown to teachers and included in the CSV export.
var EducatorResources = []Resource{
	{
		Name:        "Understood.org for Educators",
		URL:         "https://www.understood.org/en/school-learning",
		Description: "Classroom accommodations and instructional strategies.",
	},
	{
		Name:        "NASP Resources & Publications",
		URL:         "https://www.nasponline.org/resources-and-publications",
		Description: "School psychology guidance on supports and intervention.",
	},
	{
		Name:        "IRIS Center Modules",
		URL:         "https://iris.peabody.vanderbilt.edu/resources/iris-resource-locator/",
		Description: "Free training modules on evidence-based classroom practice.",
	},
	{
		Name:        "CDC ADHD in the Classroom",
		URL:         "https://www.cdc.gov/adhd/treatment/classroom.html",
		Description: "Behavioral classroom management approaches that work.",
	},
}
