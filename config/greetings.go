package config

import "image/color"

// GreetingText is one localized New Year greeting
type GreetingText struct {
	Text string
	Lang string
}

// Greetings lists every greeting shown once the event starts. The first entry is
// the centred headline; the rest are scattered around it.
var Greetings = []GreetingText{
	{Text: "Happy New Year!", Lang: "English"},
	{Text: "新年快樂!", Lang: "Traditional Chinese"},
	{Text: "新年快乐!", Lang: "Simplified Chinese"},
	{Text: "明けましておめでとうございます!", Lang: "Japanese"},
	{Text: "새해 복 많이 받으세요!", Lang: "Korean"},
	{Text: "Bonne Année!", Lang: "French"},
	{Text: "Frohes Neues Jahr!", Lang: "German"},
	{Text: "¡Feliz Año Nuevo!", Lang: "Spanish"},
	{Text: "Felice Anno Nuovo!", Lang: "Italian"},
	{Text: "Feliz Ano Novo!", Lang: "Portuguese"},
	{Text: "С Новым Годом!", Lang: "Russian"},
	{Text: "नव वर्ष की शुभकामनाएँ!", Lang: "Hindi"},
	{Text: "كل عام وأنتم بخير", Lang: "Arabic"},
	{Text: "สวัสดีปีใหม่!", Lang: "Thai"},
	{Text: "Chúc Mừng Năm Mới!", Lang: "Vietnamese"},
	{Text: "Selamat Tahun Baru!", Lang: "Indonesian"},
	{Text: "Mutlu Yıllar!", Lang: "Turkish"},
	{Text: "Gelukkig Nieuwjaar!", Lang: "Dutch"},
	{Text: "Gott Nytt År!", Lang: "Swedish"},
	{Text: "Szczęśliwego Nowego Roku!", Lang: "Polish"},
	{Text: "Καλή Χρονιά!", Lang: "Greek"},
	{Text: "שנה טובה!", Lang: "Hebrew"},
	{Text: "Sakeny Wakeny!", Lang: "Dwarvish (Fantasy)"},
}

// GreetingPalette is the set of colours scattered greetings pick from
var GreetingPalette = []color.RGBA{Gold, Ruby, Sapphire, Amethyst, Emerald, Cyber}

// HeadlinePalette is the set of colours the centred greeting picks from
var HeadlinePalette = []color.RGBA{Gold, Cyber}
