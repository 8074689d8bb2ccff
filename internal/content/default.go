package content

// Default is the profile shipped with the binary.
func Default() Profile {
	return Profile{
		Owner:    "Kevin",
		Role:     "Full Stack Developer",
		Email:    "hello@example.com",
		Location: "Remote",
		Phrases:  []string{"Full Stack Developer", "Web Developer", "Freelancer"},
		Sections: []Section{
			{ID: "home", Title: "Home", Body: "Building fast, reliable web applications from the database to the browser."},
			{ID: "about", Title: "About", Body: "I design and ship full stack products. I care about clean interfaces, " +
				"predictable backends and code that the next person can read. Most of my work is JavaScript and " +
				"Node.js on the web, with Python and Java where the job calls for it."},
			{ID: "skills", Title: "Skills", Body: "Tools I reach for every day."},
			{ID: "projects", Title: "Projects", Body: "A few things I have built recently."},
			{ID: "experience", Title: "Experience", Body: "Where I have worked and what I did there."},
			{ID: "contact", Title: "Contact", Body: "Have a project in mind? Send me a message."},
		},
		Skills: []Skill{
			{Name: "JavaScript", Percent: 90, Category: "Frontend"},
			{Name: "HTML & CSS", Percent: 95, Category: "Frontend"},
			{Name: "React", Percent: 80, Category: "Frontend"},
			{Name: "Node.js", Percent: 85, Category: "Backend"},
			{Name: "Python", Percent: 75, Category: "Backend"},
			{Name: "Java", Percent: 70, Category: "Backend"},
			{Name: "C#", Percent: 65, Category: "Backend"},
			{Name: "MySQL", Percent: 80, Category: "Data"},
			{Name: "Git", Percent: 85, Category: "Tooling"},
		},
		Stats: []Stat{
			{Label: "Projects shipped", Count: 25, Suffix: "+"},
			{Label: "Happy clients", Count: 15, Suffix: "+"},
			{Label: "Years coding", Count: 4},
		},
		Projects: []Project{
			{Title: "Storefront", Summary: "E-commerce site with cart, checkout and an admin dashboard.", Tags: []string{"Node.js", "MySQL"}},
			{Title: "Task Board", Summary: "Kanban board with realtime updates between clients.", Tags: []string{"JavaScript", "WebSockets"}},
			{Title: "Inventory API", Summary: "REST service tracking stock across warehouses.", Tags: []string{"Java", "MySQL"}},
		},
		Timeline: []Milestone{
			{Period: "2023 - now", Title: "Freelance Full Stack Developer", Detail: "Web applications for small businesses."},
			{Period: "2021 - 2023", Title: "Web Developer", Detail: "Frontend and API work on internal tools."},
			{Period: "2020", Title: "Started programming", Detail: "First projects in JavaScript and Python."},
		},
		Code: []string{
			"const developer = {",
			`  name: "Kevin",`,
			`  role: "Developer",`,
			"  stack: [",
			`    "JavaScript", "Node.js",`,
			`    "Python", "MySQL", "Java", "C#"`,
			"  ],",
			`  passion: "Web Development"`,
			"};",
		},
	}
}
