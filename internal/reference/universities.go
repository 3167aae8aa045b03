package reference

import "github.com/studhub/eventrec/pkg/models"

// Universities is the baked-in reference table of well-known institutions.
// A request-supplied table is consulted first; this one is the fallback.
// Loaded once at process start and treated as immutable.
var Universities = models.UniversityTable{
	"МГУ им. М. В. Ломоносова": {
		City:            "Москва",
		Specializations: []string{"IT", "Data Science", "AI", "Digital", "Physics", "Mathematics", "Biology", "Chemistry", "History", "Philology"},
	},
	"СПбГУ": {
		City:            "Санкт-Петербург",
		Specializations: []string{"Digital", "Computer Science", "Design", "Economics", "Law", "International Relations", "Journalism"},
	},
	"МГТУ им. Н. Э. Баумана": {
		City:            "Москва",
		Specializations: []string{"Engineering", "Programming", "Cybersecurity", "Robotics", "Aerospace", "Biomedical Engineering"},
	},
	"НИУ ВШЭ": {
		City:            "Москва",
		Specializations: []string{"Data Science", "Product Management", "Digital Marketing", "Economics", "Sociology", "Political Science", "Finance"},
	},
	"МФТИ": {
		City:            "Долгопрудный",
		Specializations: []string{"AI", "Machine Learning", "Software Engineering", "Physics", "Mathematics", "Bioinformatics", "Quantum Technologies"},
	},
	"ИТМО": {
		City:            "Санкт-Петербург",
		Specializations: []string{"IT", "AI", "Robotics", "UX/UI Design", "Computer Vision", "Cybersecurity", "Biotechnology"},
	},
	"НИТУ МИСИС": {
		City:            "Москва",
		Specializations: []string{"Engineering", "Materials", "Data Analysis", "Nanotechnology", "Metallurgy", "Mining", "IT"},
	},
	"МАИ": {
		City:            "Москва",
		Specializations: []string{"Aerospace", "Programming", "Automation", "Aircraft Engineering", "Rocket Science", "IT"},
	},
	"НИЯУ МИФИ": {
		City:            "Москва",
		Specializations: []string{"Physics", "Cybersecurity", "AI", "Nuclear Energy", "IT Security", "Quantum Physics"},
	},
	"СПбПУ (Политех)": {
		City:            "Санкт-Петербург",
		Specializations: []string{"IT", "Engineering", "Automation", "Power Engineering", "Civil Engineering", "Computer Science"},
	},
	"ТГУ": {
		City:            "Томск",
		Specializations: []string{"Data Analysis", "Software Development", "Biology", "Chemistry", "Physics", "Law", "Philology"},
	},
	"УрФУ": {
		City:            "Екатеринбург",
		Specializations: []string{"IT", "Product Management", "AI", "Engineering", "Economics", "Social Sciences", "Natural Sciences"},
	},
	"РЭУ им. Г. В. Плеханова": {
		City:            "Москва",
		Specializations: []string{"Economics", "Digital Marketing", "Analytics", "Finance", "Management", "Trade", "Hospitality"},
	},
	"Финансовый университет при Правительстве РФ": {
		City:            "Москва",
		Specializations: []string{"Finance", "Business Analytics", "IT Management", "Banking", "Insurance", "Accounting", "Taxation"},
	},
	"РАНХиГС": {
		City:            "Москва",
		Specializations: []string{"Management", "Public Policy", "Digital Transformation", "State Administration", "Economics", "Law", "HR Management"},
	},
	"ЮФУ": {
		City:            "Ростов-на-Дону",
		Specializations: []string{"IT", "Engineering", "AI", "Physics", "Mathematics", "Chemistry", "Biology", "Law", "Economics"},
	},
	"КФУ": {
		City:            "Казань",
		Specializations: []string{"IT", "AI", "Robotics", "Physics", "Mathematics", "Chemistry", "Biology", "Geology", "Law", "Economics"},
	},
	"Самарский университет": {
		City:            "Самара",
		Specializations: []string{"Aerospace", "Programming", "AI", "Aircraft Engineering", "Rocket Science", "IT"},
	},
	"ТГУСУР": {
		City:            "Томск",
		Specializations: []string{"IT", "Telecommunications", "Electronics", "Radio Engineering", "Computer Science", "Cybernetics"},
	},
	"ННГУ им. Лобачевского": {
		City:            "Нижний Новгород",
		Specializations: []string{"Programming", "Mathematics", "AI", "Physics", "Biology", "Chemistry", "Law", "Economics"},
	},
	"ПГНИУ": {
		City:            "Пермь",
		Specializations: []string{"IT", "Digital", "Data Science", "Geology", "Geography", "Biology", "Chemistry", "Physics", "Law", "Economics"},
	},
	"БФУ им. И. Канта": {
		City:            "Калининград",
		Specializations: []string{"Digital", "Computer Science", "Law", "Economics", "Philology", "History", "Geography"},
	},
	"ДВФУ": {
		City:            "Владивосток",
		Specializations: []string{"IT", "Data Science", "Marine Technology", "Oceanography", "Biology", "Economics", "International Relations"},
	},
	"СФУ": {
		City:            "Красноярск",
		Specializations: []string{"IT", "Engineering", "AI", "Physics", "Mathematics", "Chemistry", "Biology", "Geology", "Mining"},
	},
	"БелГУ": {
		City:            "Белгород",
		Specializations: []string{"IT", "Design", "Digital Marketing", "Economics", "Law", "Medicine", "Pedagogy"},
	},
	"ТюмГУ": {
		City:            "Тюмень",
		Specializations: []string{"AI", "Analytics", "Digital", "Geology", "Geography", "Biology", "Chemistry", "Physics", "Law", "Economics"},
	},
	"Иркутский государственный университет": {
		City:            "Иркутск",
		Specializations: []string{"Programming", "Data Science", "Geology", "Geography", "Biology", "Chemistry", "Physics", "Law", "Economics"},
	},
	"АлтГУ": {
		City:            "Барнаул",
		Specializations: []string{"IT", "Digital", "Automation", "Physics", "Mathematics", "Chemistry", "Biology", "Law", "Economics"},
	},
	"Саратовский национальный исследовательский университет": {
		City:            "Саратов",
		Specializations: []string{"Data Analysis", "Physics", "IT", "Mathematics", "Chemistry", "Biology", "Law", "Economics"},
	},
	"КубГУ": {
		City:            "Краснодар",
		Specializations: []string{"Digital", "Design", "Marketing", "Economics", "Law", "History", "Philology"},
	},
	"ВГУ": {
		City:            "Воронеж",
		Specializations: []string{"IT", "Engineering", "Programming", "Physics", "Mathematics", "Chemistry", "Biology", "Law", "Economics"},
	},
	"РГУ нефти и газа (НИУ) имени И.М. Губкина": {
		City:            "Москва",
		Specializations: []string{"Oil and Gas Engineering", "Geology", "Chemical Technology", "Environmental Engineering", "IT"},
	},
	"РУДН": {
		City:            "Москва",
		Specializations: []string{"International Relations", "Law", "Medicine", "Engineering", "Economics", "Philology", "IT"},
	},
	"МЭИ": {
		City:            "Москва",
		Specializations: []string{"Power Engineering", "Electrical Engineering", "IT", "Electronics", "Automation", "Thermal Engineering"},
	},
	"МИРЭА - Российский технологический университет": {
		City:            "Москва",
		Specializations: []string{"IT", "Computer Science", "Radio Engineering", "Cybernetics", "Robotics", "Information Security"},
	},
	"СПбГЭТУ «ЛЭТИ»": {
		City:            "Санкт-Петербург",
		Specializations: []string{"Electronics", "Radio Engineering", "Computer Science", "IT", "Biomedical Engineering", "Automation"},
	},
	"НГТУ им. Р.Е. Алексеева": {
		City:            "Нижний Новгород",
		Specializations: []string{"Engineering", "Shipbuilding", "IT", "Radio Engineering", "Automation", "Power Engineering"},
	},
	"КНИТУ-КАИ им. А.Н. Туполева": {
		City:            "Казань",
		Specializations: []string{"Aircraft Engineering", "Mechanical Engineering", "IT", "Radio Engineering", "Automation", "Aerospace"},
	},
	"УГНТУ": {
		City:            "Уфа",
		Specializations: []string{"Oil and Gas Engineering", "Chemical Technology", "IT", "Geology", "Environmental Engineering", "Automation"},
	},
	"ДонГТУ": {
		City:            "Донецк",
		Specializations: []string{"Mining", "Mechanical Engineering", "IT", "Electrical Engineering", "Civil Engineering", "Automation"},
	},
	"СевГУ": {
		City:            "Севастополь",
		Specializations: []string{"Marine Technology", "Shipbuilding", "IT", "Oceanography", "Electrical Engineering", "Civil Engineering"},
	},
	"АГУ": {
		City:            "Астрахань",
		Specializations: []string{"Pedagogy", "Biology", "Chemistry", "IT", "Economics", "Law", "Philology"},
	},
	"ЧелГУ": {
		City:            "Челябинск",
		Specializations: []string{"Mathematics", "Physics", "IT", "Economics", "Law", "Philology", "History"},
	},
	"ОмГУ им. Ф.М. Достоевского": {
		City:            "Омск",
		Specializations: []string{"Mathematics", "Physics", "IT", "Economics", "Law", "Philology", "History"},
	},
	"ТулГУ": {
		City:            "Тула",
		Specializations: []string{"Engineering", "IT", "Mechanical Engineering", "Civil Engineering", "Automation", "Weaponry"},
	},
	"ВятГУ": {
		City:            "Киров",
		Specializations: []string{"Pedagogy", "IT", "Engineering", "Economics", "Law", "Philology", "History"},
	},
	"КузГТУ": {
		City:            "Кемерово",
		Specializations: []string{"Mining", "Mechanical Engineering", "IT", "Electrical Engineering", "Civil Engineering", "Automation"},
	},
	"СГТУ им. Гагарина Ю.А.": {
		City:            "Саратов",
		Specializations: []string{"Engineering", "IT", "Mechanical Engineering", "Civil Engineering", "Automation", "Aerospace"},
	},
	"ВолгГТУ": {
		City:            "Волгоград",
		Specializations: []string{"Engineering", "IT", "Mechanical Engineering", "Civil Engineering", "Automation", "Chemical Technology"},
	},
	"КГТУ": {
		City:            "Калининград",
		Specializations: []string{"Marine Technology", "Shipbuilding", "IT", "Economics", "Law", "Food Technology"},
	},
	"РГРТУ": {
		City:            "Рязань",
		Specializations: []string{"Radio Engineering", "Electronics", "IT", "Computer Science", "Automation", "Cybersecurity"},
	},
	"СамГТУ": {
		City:            "Самара",
		Specializations: []string{"Engineering", "IT", "Mechanical Engineering", "Civil Engineering", "Automation", "Chemical Technology"},
	},
	"УлГТУ": {
		City:            "Ульяновск",
		Specializations: []string{"Engineering", "IT", "Mechanical Engineering", "Civil Engineering", "Automation", "Aircraft Engineering"},
	},
	"ПНИПУ": {
		City:            "Пермь",
		Specializations: []string{"Mining", "Mechanical Engineering", "IT", "Electrical Engineering", "Civil Engineering", "Automation", "Chemical Technology"},
	},
	"ЮУрГУ (НИУ)": {
		City:            "Челябинск",
		Specializations: []string{"Engineering", "IT", "Mechanical Engineering", "Civil Engineering", "Automation", "Computer Science"},
	},
	"КФУ им. В.И. Вернадского": {
		City:            "Симферополь",
		Specializations: []string{"Biology", "Chemistry", "Physics", "IT", "Economics", "Law", "Philology", "History", "Geography"},
	},
	"СКФУ": {
		City:            "Ставрополь",
		Specializations: []string{"IT", "Engineering", "Economics", "Law", "Philology", "History", "Geography", "Biology", "Chemistry", "Physics"},
	},
	"АГТУ": {
		City:            "Астрахань",
		Specializations: []string{"Fishing Industry", "Marine Technology", "IT", "Economics", "Engineering", "Automation"},
	},
	"ВГТУ": {
		City:            "Волгоград",
		Specializations: []string{"Engineering", "IT", "Mechanical Engineering", "Civil Engineering", "Automation", "Chemical Technology"},
	},
	"ИжГТУ им. М.Т. Калашникова": {
		City:            "Ижевск",
		Specializations: []string{"Engineering", "IT", "Mechanical Engineering", "Civil Engineering", "Automation", "Weaponry"},
	},
	"КГМУ": {
		City:            "Курск",
		Specializations: []string{"Medicine", "Pharmacy", "Pediatrics", "IT", "Biology", "Chemistry"},
	},
	"МГСУ (НИУ)": {
		City:            "Москва",
		Specializations: []string{"Civil Engineering", "Architecture", "IT", "Construction Management", "Urban Planning"},
	},
	"НГУ": {
		City:            "Новосибирск",
		Specializations: []string{"Physics", "Mathematics", "IT", "Biology", "Chemistry", "Geology", "Economics", "Philology"},
	},
	"РГГУ": {
		City:            "Москва",
		Specializations: []string{"Humanities", "History", "Philology", "Sociology", "Political Science", "IT", "Archival Studies"},
	},
	"РНИМУ им. Н.И. Пирогова": {
		City:            "Москва",
		Specializations: []string{"Medicine", "Pediatrics", "Biology", "Chemistry", "IT", "Pharmacy"},
	},
	"СГМУ им. В.И. Разумовского": {
		City:            "Саратов",
		Specializations: []string{"Medicine", "Pediatrics", "Biology", "Chemistry", "IT", "Pharmacy"},
	},
	"ТГМУ": {
		City:            "Тверь",
		Specializations: []string{"Medicine", "Pediatrics", "Biology", "Chemistry", "IT", "Pharmacy"},
	},
	"УГМУ": {
		City:            "Екатеринбург",
		Specializations: []string{"Medicine", "Pediatrics", "Biology", "Chemistry", "IT", "Pharmacy"},
	},
	"ЧГУ им. И.Н. Ульянова": {
		City:            "Чебоксары",
		Specializations: []string{"Engineering", "IT", "Economics", "Law", "Philology", "History", "Pedagogy"},
	},
	"ЯрГУ им. П.Г. Демидова": {
		City:            "Ярославль",
		Specializations: []string{"Mathematics", "Physics", "IT", "Economics", "Law", "Philology", "History"},
	},
}
