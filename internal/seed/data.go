package seed

import "time"

type skillSeed struct {
	Name        string
	Category    string
	Proficiency int
}

type projectSeed struct {
	Title       string
	Description string
	GitLink     string
	LiveLink    string
	Categories  []string
}

type certificationSeed struct {
	Title    string
	IssuedBy string
}

var categories = []string{"AI/ML", "Web Development", "Data Science"}

var skills = []skillSeed{
	{"Python", "Language", 90},
	{"TypeScript", "Language", 80},
	{"C#", "Language", 75},
	{"SQL", "Language", 85},
	{"Django", "Framework", 90},
	{"Flask", "Framework", 75},
	{"FastAPI", "Framework", 70},
	{"Next.js", "Framework", 85},
	{"Machine Learning", "AI/ML", 85},
	{"Deep Learning", "AI/ML", 80},
	{"Keras", "AI/ML", 75},
	{"PyTorch", "AI/ML", 70},
	{"TensorFlow", "AI/ML", 70},
	{"Tailwind CSS", "Web", 90},
	{"Bootstrap", "Web", 85},
	{"Git/GitHub", "Tool", 90},
}

var education = struct {
	Degree, School, StartYear, EndYear, Description string
}{
	Degree:    "BS – Software Engineering",
	School:    "Sir Syed University of Engineering and Technology",
	StartYear: "2023",
	EndYear:   "2027",
	Description: "6th Semester Student. Focusing on AI, Machine Learning, and Software Engineering. " +
		"I have a strong foundation in Python, Django, and machine learning concepts. " +
		"I'm actively applying IBM-certified skills in Real-world projects, focusing on Deep Learning and Agentic AI.",
}

var experience = struct {
	Title, Company, Description string
	StartDate                  time.Time
	IsCurrent                  bool
}{
	Title:       "Software Engineer (Internship)",
	Company:     "Seeking Internship",
	Description: "Currently seeking an internship role in AI, Machine Learning, or Software Engineering.",
	StartDate:   time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	IsCurrent:   true,
}

var projects = []projectSeed{
	{
		Title:       "Business AI Meeting Assistant",
		Description: "AI-driven notebook for summarizing and analyzing business meetings using LLMs.",
		GitLink:     "https://github.com/muhammad-hassn/AI-and-ML-Projects/blob/main/Business_AI_Meeting.ipynb",
		Categories:  []string{"AI/ML", "Python"},
	},
	{
		Title:       "DPO Fine-Tuning v1",
		Description: "Direct Preference Optimization (DPO) implementation for fine-tuning large language models.",
		GitLink:     "https://github.com/muhammad-hassn/AI-and-ML-Projects/blob/main/DPO_Fine_Tuning_v1_(1).ipynb",
		Categories:  []string{"AI/ML", "Deep Learning"},
	},
	{
		Title:       "AI RAG Assistant (LangChain)",
		Description: "Built an AI RAG Assistant using LangChain for efficient document retrieval and answering.",
		GitLink:     "https://github.com/muhammad-hassn/AI-and-ML-Projects/blob/main/Graded_Assignment_Final_Project_Build_an_AI_RAG_Assistant_Using_LangChain.ipynb",
		Categories:  []string{"AI/ML", "LangChain"},
	},
	{
		Title:       "Image Captioning AI",
		Description: "IBM Skills Network project for generating automated captions for images using computer vision.",
		GitLink:     "https://github.com/muhammad-hassn/AI-and-ML-Projects/blob/main/Image_Captioning_AI_(IBM_Skills_Network)%20(1).ipynb",
		Categories:  []string{"AI/ML", "Computer Vision"},
	},
	{
		Title:       "Rainfall Prediction Classifier",
		Description: "Machine Learning classifier to predict rainfall patterns based on historical data.",
		GitLink:     "https://github.com/muhammad-hassn/AI-and-ML-Projects/blob/main/Rainfall_Prediction_Classifier.ipynb",
		Categories:  []string{"AI/ML", "Scikit-Learn"},
	},
	{
		Title:       "Nasim and SON - Django Website",
		Description: "A professional business website built with Django, featuring modern UI and custom backend.",
		LiveLink:    "https://better-hester-hassanprojects-98ecd66a.koyeb.app/",
		Categories:  []string{"Web", "Django"},
	},
	{
		Title:       "Grocery Management System",
		Description: "Full-stack web application for managing inventory and sales in a grocery store environment.",
		GitLink:     "https://github.com/muhammad-hassn/WebProjects/tree/main/gerocery_management",
		Categories:  []string{"Web", "Management"},
	},
	{
		Title:       "Car Rental System (C#)",
		Description: "A robust desktop/web application for managing car rentals, built using C# and .NET.",
		GitLink:     "https://github.com/muhammad-hassn/WebProjects/tree/main/Car_Rental_System",
		Categories:  []string{"Web", "C#"},
	},
	{
		Title:       "Ecommerce Web Project",
		Description: "Scalable ecommerce platform with product listings, cart functionality, and user authentication.",
		GitLink:     "https://github.com/muhammad-hassn/WebProjects/tree/main/EcommerceWeb",
		Categories:  []string{"Web", "Ecommerce"},
	},
}

var certifications = []certificationSeed{
	{"IBM AI Engineering", "IBM"},
	{"IBM Machine Learning Engineering", "IBM"},
	{"IBM Deep Learning", "IBM"},
	{"Agentic AI and AI Agents with Python", "IBM"},
	{"Python for Data Science, AI & Development", "IBM"},
}
