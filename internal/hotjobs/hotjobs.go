// Package hotjobs holds the read-only demo catalog shown alongside the
// database-backed listings. Entries are never persisted and applying to one
// writes nothing.
package hotjobs

import (
	"strconv"
	"strings"
)

// IDPrefix marks a route job id as a catalog reference, e.g. "hot-7".
const IDPrefix = "hot-"

type HotJob struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Company     string `json:"company"`
	Experience  string `json:"experience"`
}

// ParseID extracts the numeric suffix from a "hot-<n>" id. ok is false when
// s does not carry the prefix or the suffix is not a number.
func ParseID(s string) (id int, ok bool) {
	suffix, found := strings.CutPrefix(s, IDPrefix)
	if !found {
		return 0, false
	}
	id, err := strconv.Atoi(suffix)
	if err != nil {
		return 0, false
	}
	return id, true
}

// ByID returns the catalog entry with the given id, or nil.
func ByID(id int) *HotJob {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

// All returns the full catalog in listing order.
func All() []HotJob {
	return catalog
}

var catalog = []HotJob{
	{ID: 1, Title: "Frontend Developer", Description: "Work with React.js and build responsive UIs.", Type: "Full Time", Category: "Development", Location: "Bangalore", Salary: "₹8-10 LPA", Company: "TechNova", Experience: "2-4 years"},
	{ID: 2, Title: "Backend Developer", Description: "Develop APIs using Node.js and Express.", Type: "Full Time", Category: "Development", Location: "Hyderabad", Salary: "₹10-12 LPA", Company: "CodeBase", Experience: "2-4 years"},
	{ID: 3, Title: "UI/UX Designer", Description: "Design modern and intuitive user interfaces.", Type: "Full Time", Category: "Design", Location: "Mumbai", Salary: "₹6-8 LPA", Company: "DesignHub", Experience: "3-5 years"},
	{ID: 4, Title: "DevOps Engineer", Description: "Manage CI/CD pipelines and cloud infra.", Type: "Full Time", Category: "DevOps", Location: "Remote", Salary: "₹9-12 LPA", Company: "CloudOps", Experience: "3-6 years"},
	{ID: 5, Title: "Data Analyst", Description: "Analyze data and provide business insights.", Type: "Full Time", Category: "Data", Location: "Pune", Salary: "₹7-9 LPA", Company: "DataWorks", Experience: "1-3 years"},
	{ID: 6, Title: "Machine Learning Engineer", Description: "Build ML models and deploy in production.", Type: "Full Time", Category: "AI/ML", Location: "Bangalore", Salary: "₹12-15 LPA", Company: "AI Labs", Experience: "5+ years"},
	{ID: 7, Title: "Product Manager", Description: "Lead cross-functional teams to build products.", Type: "Full Time", Category: "Product", Location: "Gurgaon", Salary: "₹15-18 LPA", Company: "Prodify", Experience: "6+ years"},
	{ID: 8, Title: "QA Tester", Description: "Perform manual and automation testing.", Type: "Full Time", Category: "Testing", Location: "Chennai", Salary: "₹5-7 LPA", Company: "BugSquashers", Experience: "0-2 years"},
	{ID: 9, Title: "Content Writer", Description: "Write blogs, website content, and case studies.", Type: "Full Time", Category: "Content", Location: "Remote", Salary: "₹4-5 LPA", Company: "WriteWave", Experience: "1-3 years"},
	{ID: 10, Title: "HR Executive", Description: "Handle recruitment and employee engagement.", Type: "Full Time", Category: "HR", Location: "Noida", Salary: "₹4-6 LPA", Company: "PeopleFirst", Experience: "1-3 years"},
	{ID: 11, Title: "Digital Marketing Executive", Description: "Run paid campaigns and manage SEO.", Type: "Full Time", Category: "Marketing", Location: "Delhi", Salary: "₹5-7 LPA", Company: "GrowthHacks", Experience: "1-3 years"},
	{ID: 12, Title: "Cloud Architect", Description: "Design and implement cloud solutions.", Type: "Full Time", Category: "Cloud", Location: "Bangalore", Salary: "₹18-22 LPA", Company: "SkyNet", Experience: "6+ years"},
	{ID: 13, Title: "Sales Manager", Description: "Drive sales strategies and lead teams.", Type: "Full Time", Category: "Sales", Location: "Mumbai", Salary: "₹10-14 LPA", Company: "SellWell", Experience: "4-7 years"},
	{ID: 14, Title: "Business Analyst", Description: "Analyze business processes and suggest solutions.", Type: "Full Time", Category: "Business", Location: "Chandigarh", Salary: "₹8-10 LPA", Company: "BizConsult", Experience: "3-5 years"},
	{ID: 15, Title: "Customer Support Executive", Description: "Support customers via chat, mail, and calls.", Type: "Full Time", Category: "Support", Location: "Pune", Salary: "₹3.5-5 LPA", Company: "HelpDeskPro", Experience: "0-1 years"},
	{ID: 16, Title: "IT Support Engineer", Description: "Provide hardware and software support.", Type: "Full Time", Category: "IT", Location: "Ahmedabad", Salary: "₹4-6 LPA", Company: "SysCare", Experience: "1-3 years"},
	{ID: 17, Title: "Graphic Designer", Description: "Create visuals for digital platforms.", Type: "Full Time", Category: "Design", Location: "Kolkata", Salary: "₹4-6 LPA", Company: "CreativeCore", Experience: "1-3 years"},
	{ID: 18, Title: "Android Developer", Description: "Build apps with Kotlin and Java.", Type: "Full Time", Category: "Mobile", Location: "Hyderabad", Salary: "₹6-8 LPA", Company: "AppStorm", Experience: "2-4 years"},
	{ID: 19, Title: "iOS Developer", Description: "Develop iOS apps with Swift.", Type: "Full Time", Category: "Mobile", Location: "Chennai", Salary: "₹7-9 LPA", Company: "SwiftTech", Experience: "2-4 years"},
	{ID: 20, Title: "Video Editor", Description: "Edit and produce marketing videos.", Type: "Full Time", Category: "Media", Location: "Mumbai", Salary: "₹3.5-5 LPA", Company: "VidEditz", Experience: "1-3 years"},
	{ID: 21, Title: "SEO Specialist", Description: "Optimize site rankings and content.", Type: "Full Time", Category: "Marketing", Location: "Delhi", Salary: "₹4-6 LPA", Company: "RankHigh", Experience: "2-4 years"},
	{ID: 22, Title: "Social Media Manager", Description: "Manage content and grow online presence.", Type: "Full Time", Category: "Marketing", Location: "Remote", Salary: "₹5-7 LPA", Company: "Socioly", Experience: "2-5 years"},
	{ID: 23, Title: "Technical Writer", Description: "Write product guides and documentation.", Type: "Full Time", Category: "Content", Location: "Bangalore", Salary: "₹6-8 LPA", Company: "DocuTech", Experience: "3-5 years"},
	{ID: 24, Title: "Cybersecurity Analyst", Description: "Protect systems from cyber threats.", Type: "Full Time", Category: "Security", Location: "Gurgaon", Salary: "₹10-13 LPA", Company: "SecureNet", Experience: "4-7 years"},
	{ID: 25, Title: "AI Researcher", Description: "Work on NLP and computer vision models.", Type: "Full Time", Category: "AI/ML", Location: "Pune", Salary: "₹15-20 LPA", Company: "AIThinkTank", Experience: "6+ years"},
	{ID: 26, Title: "Project Coordinator", Description: "Coordinate tasks and maintain timelines.", Type: "Full Time", Category: "Management", Location: "Chennai", Salary: "₹5-7 LPA", Company: "PlanIt", Experience: "2-4 years"},
	{ID: 27, Title: "Technical Support Engineer", Description: "Resolve client issues and provide tech support.", Type: "Full Time", Category: "Support", Location: "Bangalore", Salary: "₹4-6 LPA", Company: "TechHelp", Experience: "1-3 years"},
	{ID: 28, Title: "Recruiter", Description: "Source and screen potential candidates.", Type: "Full Time", Category: "HR", Location: "Jaipur", Salary: "₹4.5-6 LPA", Company: "HireRight", Experience: "2-4 years"},
	{ID: 29, Title: "Legal Associate", Description: "Draft contracts and handle legal work.", Type: "Full Time", Category: "Legal", Location: "Delhi", Salary: "₹6-8 LPA", Company: "LawVerse", Experience: "3-5 years"},
	{ID: 30, Title: "Operations Manager", Description: "Handle daily ops and process improvement.", Type: "Full Time", Category: "Operations", Location: "Kolkata", Salary: "₹9-11 LPA", Company: "Opsify", Experience: "5+ years"},
	{ID: 31, Title: "Game Developer", Description: "Develop engaging 2D/3D games.", Type: "Full Time", Category: "Gaming", Location: "Pune", Salary: "₹10-14 LPA", Company: "PlayZone", Experience: "3-5 years"},
	{ID: 32, Title: "Graphic Designer", Description: "Create marketing visuals and assets.", Type: "Part Time", Category: "Design", Location: "Delhi", Salary: "₹4-6 LPA", Company: "DesignMinds", Experience: "0-1 years"},
	{ID: 33, Title: "Security Analyst", Description: "Monitor and prevent cyber threats.", Type: "Full Time", Category: "Security", Location: "Mumbai", Salary: "₹9-11 LPA", Company: "CyberSafe", Experience: "4-7 years"},
	{ID: 34, Title: "Product Manager", Description: "Lead product development lifecycle.", Type: "Full Time", Category: "Management", Location: "Remote", Salary: "₹20-25 LPA", Company: "InnovateX", Experience: "6+ years"},
	{ID: 35, Title: "iOS Developer", Description: "Develop native iOS apps.", Type: "Full Time", Category: "Mobile", Location: "Chennai", Salary: "₹10-13 LPA", Company: "SwiftMob", Experience: "2-5 years"},
	{ID: 36, Title: "Android Developer", Description: "Create Android mobile applications.", Type: "Full Time", Category: "Mobile", Location: "Noida", Salary: "₹9-12 LPA", Company: "DroidBuild", Experience: "2-5 years"},
	{ID: 37, Title: "Digital Marketing Intern", Description: "Support online campaigns and content creation.", Type: "Internship", Category: "Marketing", Location: "Gurgaon", Salary: "₹10k/month", Company: "ClickBuzz", Experience: "Fresher"},
	{ID: 38, Title: "SEO Specialist", Description: "Improve website rankings and traffic.", Type: "Full Time", Category: "Marketing", Location: "Jaipur", Salary: "₹5-7 LPA", Company: "RankFirst", Experience: "2-4 years"},
	{ID: 39, Title: "Video Editor", Description: "Edit and produce video content.", Type: "Contract", Category: "Media", Location: "Mumbai", Salary: "₹6-8 LPA", Company: "FrameCut", Experience: "1-3 years"},
	{ID: 40, Title: "UI Designer", Description: "Design user interfaces for web and mobile.", Type: "Full Time", Category: "Design", Location: "Bangalore", Salary: "₹10-12 LPA", Company: "PixelEdge", Experience: "3-5 years"},
	{ID: 41, Title: "Customer Support Executive", Description: "Handle customer inquiries and support.", Type: "Full Time", Category: "Support", Location: "Ahmedabad", Salary: "₹3.5-5 LPA", Company: "HelpDeskPro", Experience: "0-2 years"},
	{ID: 42, Title: "Finance Analyst", Description: "Analyze financial performance and reports.", Type: "Full Time", Category: "Finance", Location: "Kolkata", Salary: "₹8-10 LPA", Company: "FinSharp", Experience: "2-4 years"},
	{ID: 43, Title: "Legal Associate", Description: "Assist in drafting and reviewing legal documents.", Type: "Full Time", Category: "Legal", Location: "Delhi", Salary: "₹7-9 LPA", Company: "LawBridge", Experience: "2-4 years"},
	{ID: 44, Title: "Business Analyst", Description: "Bridge business needs and tech solutions.", Type: "Full Time", Category: "Analysis", Location: "Hyderabad", Salary: "₹9-11 LPA", Company: "BizIntel", Experience: "3-5 years"},
	{ID: 45, Title: "Systems Engineer", Description: "Maintain and improve IT infrastructure.", Type: "Full Time", Category: "Infrastructure", Location: "Chandigarh", Salary: "₹6-8 LPA", Company: "InfraTech", Experience: "3-6 years"},
	{ID: 46, Title: "Robotics Engineer", Description: "Develop robotic automation systems.", Type: "Full Time", Category: "Engineering", Location: "Pune", Salary: "₹14-18 LPA", Company: "RoboCore", Experience: "5+ years"},
	{ID: 47, Title: "IT Support Specialist", Description: "Troubleshoot and resolve IT issues.", Type: "Full Time", Category: "Support", Location: "Nagpur", Salary: "₹4.5-6 LPA", Company: "FixTech", Experience: "1-3 years"},
	{ID: 48, Title: "Intern - HR & Admin", Description: "Support HR ops and documentation.", Type: "Internship", Category: "HR", Location: "Jaipur", Salary: "₹1.8-2.2 LPA", Company: "TeamCore", Experience: "Fresher"},
	{ID: 49, Title: "UX Researcher", Description: "Conduct user studies and usability tests.", Type: "Full Time", Category: "Design", Location: "Remote", Salary: "₹9-12 LPA", Company: "UserLab", Experience: "2-4 years"},
	{ID: 50, Title: "Salesforce Developer", Description: "Develop custom Salesforce solutions.", Type: "Full Time", Category: "CRM", Location: "Mumbai", Salary: "₹13-16 LPA", Company: "CRMWorld", Experience: "5+ years"},
}
