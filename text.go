package main

type Profile struct {
	Name     string
	Title    string
	Subtitle string
	Summary  string
	Email    string
	LinkedIn string
	GitHub   string
	Location string
}

type Skill struct {
	Name  string
	Level int
}

type SkillGroup struct {
	Name   string
	Skills []Skill
}

type Job struct {
	Role    string
	Company string
	Period  string
	Bullets []string
}

type Project struct {
	Title string
	Type  string
	Tech  []string
	Desc  string
	Link  string
}

type Certification struct {
	Name   string
	Issuer string
	Date   string
}

var (
	AboutMe = Profile{
		Name:     "Francisco Flores Enríquez",
		Title:    "Cloud System Engineer Associate",
		Subtitle: "CloudOps | AWS | Linux Administration",
		Summary: `Cloud System Engineer Associate with hands-on experience in AWS cloud operations,
	Linux administration, monitoring, and IaC. Specialized in maintaining high-availability environments,
	executing operational runbooks, and resolving incidents.`,
		Email:    "franciscofloresenriquez2001@gmail.com",
		LinkedIn: "https://www.linkedin.com/in/francisco-flores-89230b25b/",
		GitHub:   "https://github.com/franciscofloresen",
		Location: "Tlaquepaque, Jalisco / Remote",
	}

	SkillGroups = []SkillGroup{
		{Name: "Cloud", Skills: []Skill{
			{"AWS Lambda", 90}, {"EC2 & VPC", 85}, {"CloudWatch", 90}, {"S3 & CloudFront", 85}, {"IAM & Security", 80},
		}},
		{Name: "DevOps", Skills: []Skill{
			{"Terraform (IaC)", 85}, {"GitHub Actions", 80}, {"Docker", 75}, {"CI/CD Pipelines", 80},
		}},
		{Name: "System", Skills: []Skill{
			{"Linux Admin", 85}, {"Bash Scripting", 80}, {"Python Automation", 90}, {"Networking", 75},
		}},
		{Name: "Backend", Skills: []Skill{
			{"Flask / Node.js", 80}, {"Aurora MySQL", 75}, {"DynamoDB", 70}, {"REST APIs", 85},
		}},
	}

	Experience = []Job{
		{
			Role:    "Freelance Cloud & Systems Engineer",
			Company: "Various Clients (Remote)",
			Period:  "2023 - Present",
			Bullets: []string{
				"Managed AWS cloud environments, performing monitoring, incident investigation, and troubleshooting for serverless applications.",
				"Executed operational tasks: log analysis in CloudWatch, API debugging, and system updates/patching.",
				"Optimized backend services using AWS Lambda, App Runner, S3, and Aurora MySQL.",
				"Automated infrastructure provisioning using Terraform for consistent deployments.",
				"Implemented secure authentication flows and ensured SLA compliance.",
			},
		},
	}

	Projects = []Project{
		{
			Title: "Med & Beauty - Web Catalog",
			Type:  "Serverless Architecture",
			Tech:  []string{"Terraform", "AWS Lambda", "DynamoDB", "Cognito", "CloudFront"},
			Desc: `Serverless product catalog architected on AWS. Implements JWT auth via Cognito,
	Role-Based Access Control (RBAC) for admins, and a CRUD API using Lambda/DynamoDB.
	Optimized for cost (<$0.50/mo) using S3/CloudFront hosting.`,
			Link: "https://distribuidoramedandbeauty.com",
		},
		{
			Title: "Serverless Portfolio with AI",
			Type:  "Full Stack Cloud",
			Tech:  []string{"AWS Amplify", "Python", "OpenAI API", "React"},
			Desc: `Managed full lifecycle of an Amplify-hosted application. Integrated Python Lambda
	functions with OpenAI API for an intelligent chatbot.`,
			Link: "https://main.dd5vs7yyk3xwx.amplifyapp.com",
		},
		{
			Title: "Snake Game in C",
			Type:  "Systems Programming",
			Tech:  []string{"C", "Low-level Systems", "Memory Mgmt"},
			Desc:  `Low-level application demonstrating deep understanding of CPU operations, pointers, and memory management.`,
			Link:  "#",
		},
	}

	Certifications = []Certification{
		{"AWS Certified Cloud Practitioner", "Amazon Web Services", "Oct 2025"},
		{"AWS Academy Graduate - Cloud Web App Builder", "Amazon Web Services", "Oct 2025"},
		{"Cypher & Neo4j Fundamentals", "Neo4j", "Mar/Apr 2025"},
		{"Cisco Python Essentials 1", "Cisco Networking Academy", "Dec 2022"},
	}
)
