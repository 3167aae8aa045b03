package reference

// Skills is the fixed vocabulary of valid skill tags. User interests and event
// recommended skills are rejected at the boundary when not listed here.
var Skills = []string{
	"Python",
	"JavaScript",
	"TypeScript",
	"Go",
	"Java",
	"Kotlin",
	"Swift",
	"C++",
	"C#",
	"Rust",
	"SQL",
	"NoSQL",
	"HTML",
	"CSS",
	"React",
	"Vue",
	"Angular",
	"Node.js",
	"FastAPI",
	"Django",
	"Flask",
	"Spring",
	"Machine Learning",
	"Deep Learning",
	"Data Science",
	"Data Analysis",
	"Data Engineering",
	"Computer Vision",
	"NLP",
	"PyTorch",
	"TensorFlow",
	"Pandas",
	"NumPy",
	"Linear Algebra",
	"Statistics",
	"Mathematics",
	"Algorithms",
	"Docker",
	"Kubernetes",
	"Git",
	"Linux",
	"DevOps",
	"CI/CD",
	"Cloud Computing",
	"Cybersecurity",
	"Cryptography",
	"Blockchain",
	"Big Data",
	"Robotics",
	"Embedded Systems",
	"Game Development",
	"Mobile Development",
	"Web Development",
	"Frontend",
	"Backend",
	"QA",
	"Testing",
	"System Design",
	"UX/UI Design",
	"Graphic Design",
	"Figma",
	"Product Management",
	"Project Management",
	"Agile",
	"Digital Marketing",
	"SMM",
	"Copywriting",
	"Analytics",
	"Business Analytics",
	"Economics",
	"Finance",
	"Management",
	"Entrepreneurship",
	"Public Speaking",
	"Teamwork",
	"Leadership",
	"English",
}

// SkillSet returns the vocabulary as a lookup set.
func SkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(Skills))
	for _, s := range Skills {
		set[s] = struct{}{}
	}
	return set
}
