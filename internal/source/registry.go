// Package source defines crawl target descriptors and the static registry.
package source

// Descriptor identifies one crawl target. Pure data, no behavior.
type Descriptor struct {
	URL       string
	Institute string
	City      string
	Type      string
}

// Registry returns the static list of institutional pages to crawl.
// Institute values double as directory codes where a code exists; department
// pages carry a suffix and fall back to the synthesized directory entry.
func Registry() []Descriptor {
	return []Descriptor{
		// IIT Madras
		{URL: "https://dsai.iitm.ac.in/academics/internships/", Institute: "IITM", City: "Chennai", Type: "Academic"},
		{URL: "https://dsai.iitm.ac.in/open-positions/", Institute: "IITM", City: "Chennai", Type: "Research"},
		{URL: "https://www.iitm.ac.in/research/internship", Institute: "IITM", City: "Chennai", Type: "Research"},
		{URL: "https://www.iitm.ac.in/human-resources/internships", Institute: "IITM", City: "Chennai", Type: "Academic"},

		// IIT Delhi
		{URL: "https://ird.iitd.ac.in/content/internships", Institute: "IITD", City: "Delhi", Type: "Research"},
		{URL: "https://home.iitd.ac.in/academics.php", Institute: "IITD", City: "Delhi", Type: "Academic"},

		// IIT Kanpur
		{URL: "https://www.iitk.ac.in/dora/internships", Institute: "IITK", City: "Kanpur", Type: "Research"},
		{URL: "https://www.iitk.ac.in/cse/summer-internships", Institute: "IITK", City: "Kanpur", Type: "Academic"},

		// IIT Kharagpur
		{URL: "https://www.iitkgp.ac.in/internship", Institute: "IITKGP", City: "Kharagpur", Type: "Academic"},
		{URL: "https://www.iitkgp.ac.in/research-internship", Institute: "IITKGP", City: "Kharagpur", Type: "Research"},

		// IIT Roorkee
		{URL: "https://www.iitr.ac.in/academics/pages/Internship.html", Institute: "IITR", City: "Roorkee", Type: "Academic"},
		{URL: "https://www.iitr.ac.in/administration/pages/Internship.html", Institute: "IITR", City: "Roorkee", Type: "Academic"},

		// IIT Guwahati
		{URL: "https://www.iitg.ac.in/cep/internship.html", Institute: "IITG", City: "Guwahati", Type: "Academic"},
		{URL: "https://www.iitg.ac.in/research/internship", Institute: "IITG", City: "Guwahati", Type: "Research"},

		// NITs
		{URL: "https://www.nitk.ac.in/internships", Institute: "NITK", City: "Surathkal", Type: "Academic"},
		{URL: "https://nitc.ac.in/academics/internships", Institute: "NITC", City: "Calicut", Type: "Academic"},

		// IIITs
		{URL: "https://www.iiit.ac.in/academics/internships/", Institute: "IIIT", City: "Hyderabad", Type: "Academic"},
		{URL: "https://www.iiitb.ac.in/internships", Institute: "IIITB", City: "Bangalore", Type: "Academic"},
		{URL: "https://www.iiitd.ac.in/careers", Institute: "IIITD", City: "Delhi", Type: "Academic"},
	}
}
