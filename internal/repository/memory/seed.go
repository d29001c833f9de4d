package memory

import "collegeevents/internal/domain"

// SampleEvents returns a fresh copy of the built-in catalog.
func SampleEvents() []domain.Event {
	return []domain.Event{
		{
			ID:          "1",
			EventName:   "HackMIT 2024",
			EventDate:   "2024-02-15",
			EventType:   domain.EventTypeHackathon,
			College:     "Massachusetts Institute of Technology",
			Location:    "Cambridge, MA",
			Link:        "https://hackmit.org",
			Description: "Join us for 48 hours of innovation, collaboration, and coding at one of the most prestigious hackathons in the world. Build something amazing with fellow students from around the globe.",
		},
		{
			ID:          "2",
			EventName:   "AI in Healthcare Workshop",
			EventDate:   "2024-02-20",
			EventType:   domain.EventTypeWorkshop,
			College:     "Stanford University",
			Location:    "Palo Alto, CA",
			Link:        "https://stanford.edu/ai-healthcare",
			Description: "Explore the intersection of artificial intelligence and healthcare. Learn about machine learning applications in medical diagnosis, treatment planning, and patient care.",
		},
		{
			ID:          "3",
			EventName:   "Future of Web Development",
			EventDate:   "2024-02-25",
			EventType:   domain.EventTypeTechTalk,
			College:     "University of California, Berkeley",
			Location:    "Berkeley, CA",
			Link:        "https://berkeley.edu/webdev-talk",
			Description: "Industry leaders discuss emerging trends in web development, including WebAssembly, edge computing, and the next generation of JavaScript frameworks.",
		},
		{
			ID:          "4",
			EventName:   "CalHacks 11.0",
			EventDate:   "2024-03-01",
			EventType:   domain.EventTypeHackathon,
			College:     "University of California, Berkeley",
			Location:    "Berkeley, CA",
			Link:        "https://calhacks.io",
			Description: "The largest collegiate hackathon on the West Coast. Build innovative solutions to real-world problems with access to cutting-edge APIs and mentorship from industry professionals.",
		},
		{
			ID:          "5",
			EventName:   "Cybersecurity Fundamentals",
			EventDate:   "2024-03-05",
			EventType:   domain.EventTypeWorkshop,
			College:     "Carnegie Mellon University",
			Location:    "Pittsburgh, PA",
			Link:        "https://cmu.edu/cybersecurity",
			Description: "Learn the basics of cybersecurity including network security, cryptography, and ethical hacking. Hands-on exercises with real-world scenarios.",
		},
		{
			ID:          "6",
			EventName:   "Quantum Computing Breakthrough",
			EventDate:   "2024-03-10",
			EventType:   domain.EventTypeTechTalk,
			College:     "Harvard University",
			Location:    "Cambridge, MA",
			Link:        "https://harvard.edu/quantum-talk",
			Description: "Leading researchers present the latest breakthroughs in quantum computing and discuss the potential impact on cryptography, optimization, and scientific simulation.",
		},
		{
			ID:          "7",
			EventName:   "TreeHacks 2024",
			EventDate:   "2024-03-15",
			EventType:   domain.EventTypeHackathon,
			College:     "Stanford University",
			Location:    "Palo Alto, CA",
			Link:        "https://treehacks.com",
			Description: "Stanford's premier hackathon focused on creating technology for social good. Work on projects that make a positive impact on society and the environment.",
		},
		{
			ID:          "8",
			EventName:   "Mobile App Development Bootcamp",
			EventDate:   "2024-03-20",
			EventType:   domain.EventTypeWorkshop,
			College:     "Georgia Institute of Technology",
			Location:    "Atlanta, GA",
			Link:        "https://gatech.edu/mobile-bootcamp",
			Description: "Intensive 3-day bootcamp covering iOS and Android development. Build and deploy your first mobile app with guidance from experienced developers.",
		},
		{
			ID:          "9",
			EventName:   "The Ethics of AI",
			EventDate:   "2024-03-25",
			EventType:   domain.EventTypeTechTalk,
			College:     "New York University",
			Location:    "New York, NY",
			Link:        "https://nyu.edu/ai-ethics",
			Description: "A critical discussion on the ethical implications of artificial intelligence, including bias in algorithms, privacy concerns, and the future of human-AI collaboration.",
		},
		{
			ID:          "10",
			EventName:   "HackPrinceton Spring 2024",
			EventDate:   "2024-03-30",
			EventType:   domain.EventTypeHackathon,
			College:     "Princeton University",
			Location:    "Princeton, NJ",
			Link:        "https://hackprinceton.com",
			Description: "Princeton's biannual hackathon bringing together students from across the Northeast. Focus on innovation in fintech, healthtech, and sustainable technology.",
		},
		{
			ID:          "11",
			EventName:   "Data Science with Python",
			EventDate:   "2024-04-05",
			EventType:   domain.EventTypeWorkshop,
			College:     "University of Chicago",
			Location:    "Chicago, IL",
			Link:        "https://uchicago.edu/data-science",
			Description: "Learn data analysis and visualization using Python, pandas, and matplotlib. Perfect for beginners looking to enter the field of data science.",
		},
		{
			ID:          "12",
			EventName:   "Blockchain and Cryptocurrency",
			EventDate:   "2024-04-10",
			EventType:   domain.EventTypeTechTalk,
			College:     "University of Pennsylvania",
			Location:    "Philadelphia, PA",
			Link:        "https://upenn.edu/blockchain-talk",
			Description: "Explore the technology behind cryptocurrencies and learn about smart contracts, DeFi, and the future of decentralized finance.",
		},
	}
}
