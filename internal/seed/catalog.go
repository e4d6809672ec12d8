package seed

import "quickhire/internal/jobboard"

func sample(title, company, location, category, jobType, description, requirements string, salaryMin, salaryMax float64, logo string) jobboard.JobInput {
	return jobboard.JobInput{
		Title:        &title,
		Company:      &company,
		Location:     &location,
		Category:     &category,
		Type:         &jobType,
		Description:  &description,
		Requirements: &requirements,
		Salary: &jobboard.SalaryInput{
			Min: jobboard.NumberOf(&salaryMin),
			Max: jobboard.NumberOf(&salaryMax),
		},
		CompanyLogo: &logo,
	}
}

// SampleJobs 返回演示用的职位目录。
func SampleJobs() []jobboard.JobInput {
	return []jobboard.JobInput{
		sample(
			"Senior Frontend Developer",
			"TechCorp Inc.",
			"New York, NY",
			"Engineering",
			"Full-time",
			"We are looking for a Senior Frontend Developer to join our growing engineering team. You will work on building and maintaining high-quality web applications used by millions of users. You will collaborate closely with designers, backend engineers, and product managers to deliver exceptional user experiences.\n\nYou will be responsible for writing clean, maintainable code, conducting code reviews, mentoring junior developers, and contributing to architectural decisions.",
			"• 5+ years of experience with React.js\n• Strong proficiency in TypeScript\n• Experience with Next.js and server-side rendering\n• Familiarity with REST APIs and GraphQL\n• Strong understanding of web performance optimization\n• Experience with testing frameworks (Jest, Cypress)\n• Excellent communication skills",
			120000, 160000,
			"https://ui-avatars.com/api/?name=TechCorp&background=6366f1&color=fff",
		),
		sample(
			"UI/UX Designer",
			"Creative Studio",
			"Remote",
			"Design",
			"Full-time",
			"Creative Studio is seeking a talented UI/UX Designer who is passionate about creating intuitive, visually stunning digital experiences. You will be the creative force behind our product design, from early wireframes to final pixel-perfect mockups.\n\nThis role requires someone who can balance both user empathy and business goals while maintaining a strong aesthetic eye.",
			"• 3+ years of UI/UX design experience\n• Proficiency in Figma and Adobe XD\n• Strong portfolio demonstrating end-to-end design work\n• Experience with user research and usability testing\n• Understanding of front-end capabilities and constraints\n• Strong communication and presentation skills",
			80000, 110000,
			"https://ui-avatars.com/api/?name=Creative+Studio&background=ec4899&color=fff",
		),
		sample(
			"Backend Engineer (Node.js)",
			"DataFlow Systems",
			"San Francisco, CA",
			"Engineering",
			"Full-time",
			"DataFlow Systems is hiring a Backend Engineer to help us build the infrastructure powering our real-time data platform. You will design and implement scalable APIs, microservices, and data pipelines that process billions of events daily.\n\nYou will work in a fast-paced environment where your contributions will have an immediate impact on our customers.",
			"• 4+ years of Node.js experience\n• Deep understanding of REST API design\n• Experience with MongoDB and PostgreSQL\n• Knowledge of message queues (Kafka, RabbitMQ)\n• Familiarity with Docker and Kubernetes\n• Experience with AWS or GCP cloud services",
			130000, 170000,
			"https://ui-avatars.com/api/?name=DataFlow&background=0ea5e9&color=fff",
		),
		sample(
			"Digital Marketing Specialist",
			"GrowthHive",
			"Austin, TX",
			"Marketing",
			"Full-time",
			"GrowthHive is looking for a data-driven Digital Marketing Specialist to own and execute our multi-channel marketing strategy. You will manage campaigns across SEO, SEM, social media, email, and content marketing to drive user acquisition and brand awareness.",
			"• 3+ years of digital marketing experience\n• Proficiency with Google Ads and Meta Ads\n• Experience with SEO tools (Ahrefs, SEMrush)\n• Strong analytical skills and proficiency with Google Analytics\n• Experience with email marketing platforms (HubSpot, Mailchimp)\n• Excellent written communication skills",
			60000, 85000,
			"https://ui-avatars.com/api/?name=GrowthHive&background=f59e0b&color=fff",
		),
		sample(
			"Product Manager",
			"InnovateLab",
			"Seattle, WA",
			"Product",
			"Full-time",
			"InnovateLab is seeking an experienced Product Manager to lead the development of our flagship SaaS product. You will define the product vision, gather and prioritize requirements, and work cross-functionally to deliver features that delight our customers.\n\nThe ideal candidate has a blend of technical knowledge and business acumen with a passion for solving customer problems.",
			"• 4+ years of product management experience\n• Experience with Agile/Scrum methodologies\n• Strong analytical and data interpretation skills\n• Excellent stakeholder communication and management\n• Experience writing detailed PRDs and user stories\n• Technical background or understanding of software development",
			110000, 150000,
			"https://ui-avatars.com/api/?name=InnovateLab&background=10b981&color=fff",
		),
		sample(
			"Data Analyst",
			"InsightMetrics",
			"Chicago, IL",
			"Data",
			"Full-time",
			"InsightMetrics is hiring a Data Analyst to transform raw data into actionable insights that drive business decisions. You will build dashboards, perform ad-hoc analysis, and work closely with stakeholders across the company to answer critical business questions.",
			"• 2+ years of data analysis experience\n• Proficiency in SQL and Python (Pandas, NumPy)\n• Experience with BI tools (Tableau, Looker, or Power BI)\n• Strong statistical analysis skills\n• Experience with A/B testing and experimentation\n• Excellent data storytelling and presentation skills",
			75000, 100000,
			"https://ui-avatars.com/api/?name=InsightMetrics&background=8b5cf6&color=fff",
		),
		sample(
			"DevOps Engineer",
			"CloudBase",
			"Remote",
			"Engineering",
			"Contract",
			"CloudBase is seeking a skilled DevOps Engineer to help us modernize our infrastructure and deployment pipelines. You will implement CI/CD workflows, manage our cloud infrastructure on AWS, and work to improve system reliability and performance.",
			"• 3+ years of DevOps/SRE experience\n• Strong knowledge of AWS services (EC2, ECS, Lambda, RDS, S3)\n• Experience with Terraform or CloudFormation\n• Proficiency with Docker and Kubernetes\n• Experience setting up CI/CD pipelines (GitHub Actions, Jenkins)\n• Strong scripting skills (Bash, Python)",
			90000, 130000,
			"https://ui-avatars.com/api/?name=CloudBase&background=64748b&color=fff",
		),
		sample(
			"Customer Support Lead",
			"HelpDesk Pro",
			"Miami, FL",
			"Customer Support",
			"Full-time",
			"HelpDesk Pro is looking for a Customer Support Lead to manage our support team and ensure exceptional customer experiences. You will oversee day-to-day support operations, handle escalations, analyze support metrics, and work with the product team to resolve recurring issues.",
			"• 3+ years of customer support experience, 1+ year in a lead role\n• Experience with support platforms (Zendesk, Intercom, Freshdesk)\n• Strong written and verbal communication skills\n• Ability to analyze support data and create reports\n• Team management and coaching experience\n• Passion for customer success",
			55000, 75000,
			"https://ui-avatars.com/api/?name=HelpDesk+Pro&background=f97316&color=fff",
		),
		sample(
			"React Native Developer",
			"MobileFirst",
			"Boston, MA",
			"Engineering",
			"Full-time",
			"MobileFirst is seeking a React Native Developer to build and maintain our cross-platform mobile application. You will work on new features, optimize performance, and ensure a seamless experience across iOS and Android platforms.",
			"• 3+ years of React Native experience\n• Strong understanding of JavaScript and TypeScript\n• Experience with native modules and bridging\n• Familiarity with App Store and Google Play submission processes\n• Experience with Redux or Zustand for state management\n• Knowledge of mobile UI/UX best practices",
			100000, 140000,
			"https://ui-avatars.com/api/?name=MobileFirst&background=06b6d4&color=fff",
		),
		sample(
			"HR Manager",
			"PeopleFirst Corp",
			"Denver, CO",
			"Human Resources",
			"Full-time",
			"PeopleFirst Corp is hiring an HR Manager to lead our people operations as we scale from 50 to 200 employees. You will oversee recruitment, onboarding, performance management, employee relations, and compliance, ensuring we attract and retain top talent.",
			"• 5+ years of HR experience\n• SHRM or PHR certification preferred\n• Experience with HRIS systems (Workday, BambooHR)\n• Strong knowledge of employment law and compliance\n• Excellent interpersonal and conflict resolution skills\n• Experience managing full-cycle recruitment",
			85000, 115000,
			"https://ui-avatars.com/api/?name=PeopleFirst&background=84cc16&color=fff",
		),
		sample(
			"Graphic Designer (Intern)",
			"PixelWorks Agency",
			"Los Angeles, CA",
			"Design",
			"Internship",
			"PixelWorks Agency is offering an exciting internship opportunity for an aspiring Graphic Designer. You will assist senior designers on real client projects, create social media assets, and develop your design skills in a fast-paced agency environment.",
			"• Currently enrolled in or recently graduated from a design program\n• Proficiency in Adobe Creative Suite (Illustrator, Photoshop, InDesign)\n• Basic understanding of Figma\n• A portfolio showcasing your design work\n• Strong attention to detail\n• Eagerness to learn and grow",
			18, 22,
			"https://ui-avatars.com/api/?name=PixelWorks&background=e11d48&color=fff",
		),
		sample(
			"Financial Analyst",
			"Capital Ventures",
			"New York, NY",
			"Finance",
			"Full-time",
			"Capital Ventures is seeking a Financial Analyst to support our investment team with financial modeling, valuation analysis, and market research. You will play a key role in evaluating investment opportunities and preparing reports for senior stakeholders.",
			"• 2+ years of financial analysis experience\n• Strong proficiency in Excel and financial modeling\n• Experience with DCF, comparable company analysis, and LBO modeling\n• CFA Level 1 or 2 preferred\n• Strong analytical and quantitative skills\n• Excellent written and verbal communication",
			90000, 125000,
			"https://ui-avatars.com/api/?name=Capital+Ventures&background=0369a1&color=fff",
		),
	}
}
