package dao

import "gorm.io/gorm"

// seedCandidates loads the election roster into any empty candidate
// table. Candidates are never deleted during a cycle, so reruns are
// no-ops once the tables have rows.
func seedCandidates(db *gorm.DB) error {
	var count int64

	if err := db.Model(&King{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(seedKings()).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&Queen{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(seedQueens()).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&Lantern{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(seedLanterns()).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedKings() []King {
	rows := []Candidate{
		{Name: "Aung Min Khant", Batch: "HND-65", Bio: "Bio", ImagePath: "Kings/Aung Min Khant.png"},
		{Name: "Aung Khant Paing", Batch: "HND-65", Bio: "Vote Me", ImagePath: "Kings/Aung Khant Paing.png"},
		{Name: "Aung Thaw Hein", Batch: "HND-60", Bio: "Vote Me", ImagePath: "Kings/Aung Thaw Hein.png"},
		{Name: "Bo Bo Linn", Batch: "HND-65", Bio: "Vote Me", ImagePath: "Kings/Bo Bo Linn.jpg"},
		{Name: "Han Htoo Naung", Batch: "HND-60", Bio: "A yin lu htet po myan say ya ml", ImagePath: "Kings/Han Htoo Naung.jpg"},
		{Name: "Hein Lin Thaw", Batch: "HND-60", Bio: "လူမရှိလို့ ဝင်ပြိုင်တာ မရှိတဲ့ a shyak တွေလည်း ကုန်ပါပြီ", ImagePath: "Kings/Hein Lin Thaw.png"},
		{Name: "Htoo Aung Linn", Batch: "HND-69", Bio: "✨Ready to wear the crown 👑", ImagePath: "Kings/Htoo Aung Linn.png"},
		{Name: "Kaung Zaw Hein", Batch: "HND-57", Bio: "I Developed This Website, Vote ME or Get BANNED!", ImagePath: "Kings/Kaung Zaw Hein.jpg"},
		{Name: "Lin Latt Maung", Batch: "HND-52", Bio: "Love is crowned with cuteness 👑", ImagePath: "Kings/Lin Latt Maung.png"},
		{Name: "Lin Sat Naing", Batch: "HND-68", Bio: "Vote Me", ImagePath: "Kings/Lin Sat Naing.png"},
		{Name: "Min Thu Ta", Batch: "HND-65", Bio: "Vote Me", ImagePath: "Kings/Min Thu Ta.png"},
		{Name: "Naing Aung Khant", Batch: "HND-59", Bio: "Vote Me", ImagePath: "Kings/Naing Aung Khant.jpg"},
		{Name: "Nyan Lynn Htun", Batch: "HND-60", Bio: "Vote Me", ImagePath: "Kings/Nyan Lynn Htun.png"},
		{Name: "Tun Lin Aung", Batch: "HND-68", Bio: "Hated, Dated, Still Celebrated.", ImagePath: "Kings/Tun Lin Aung.png"},
		{Name: "Tun Win Aung", Batch: "HND-64", Bio: "Vote Me", ImagePath: "Kings/Tun Win Aung.png"},
		{Name: "Zin Htut Naing", Batch: "HND-65", Bio: "Vote Me", ImagePath: "Kings/Zin Htut Naing.png"},
	}

	kings := make([]King, len(rows))
	for i, row := range rows {
		kings[i] = King{Candidate: row}
	}
	return kings
}

func seedQueens() []Queen {
	rows := []Candidate{
		{Name: "Aye Thu Aung", Batch: "HND-60", Bio: "Vote Me", ImagePath: "Queen/Aye Thu Aung.png"},
		{Name: "Ban Htoi Mai", Batch: "L3 Batch42", Bio: "Vote Me", ImagePath: "Queen/Ban Htoi Mai.png"},
		{Name: "Hla Wutt Hmone Oo", Batch: "HND-69", Bio: "Shinning Bright ✨", ImagePath: "Queen/Hla Wutt Hmone Oo.png"},
		{Name: "Hnin Oo Shwe Yie", Batch: "Level 3 B 41", Bio: "Vote Me", ImagePath: "Queen/Hnin Oo Shwe Yie.png"},
		{Name: "Hnin Thiri", Batch: "HND-68", Bio: "Taste like your sweetest dreams💭 💕", ImagePath: "Queen/Hnin Thiri.png"},
		{Name: "Hsu Wati Hnin", Batch: "HND-59", Bio: "Vote Me", ImagePath: "Queen/Hsu Wati Hnin.png"},
		{Name: "May Thu Lwin", Batch: "HND-8 Business", Bio: "💕 \"Brains, beauty, and a heart that shines 🌸\" 💕", ImagePath: "Queen/May Thu Lwin.png"},
		{Name: "Pan Myat Nadi", Batch: "Pre IGCse batch6", Bio: "Vote Me", ImagePath: "Queen/Ma Pan Myat Nadi.png"},
		{Name: "Pwint Phyu Soe", Batch: "HND-65", Bio: "Through pain, sadness, and loss, never give up 💕 Keep striving for your life’s best. I am cheering you on every step 🍀", ImagePath: "Queen/Pwint Phyu Soe.jpg"},
		{Name: "Shwe Phyo Wai", Batch: "HND-59", Bio: "Vote Me", ImagePath: "Queen/Shwe Phyo Wai.png"},
		{Name: "Thanzin Cho", Batch: "HND-69", Bio: "Progress, not perfection", ImagePath: "Queen/Thanzin Cho.png"},
		{Name: "Thet Htar Shwe Zin", Batch: "GUF-91", Bio: "A queen not only wears a crown but represents her people.", ImagePath: "Queen/Thet Htar Shwe Zin.png"},
		{Name: "Thet Myat Noe", Batch: "HND-64", Bio: "Your vibe attracts your tribe.", ImagePath: "Queen/Thet Myat Noe.png"},
		{Name: "Thiri Naing", Batch: "Level-3 Batch-38", Bio: "Vote Me", ImagePath: "Queen/Thiri Naing.png"},
		{Name: "Thoon Waddy", Batch: "HND-9 Business", Bio: "Vote Me", ImagePath: "Queen/Thoon Waddy.png"},
		{Name: "Thuu Thuu Han Wai", Batch: "HND-65", Bio: "Brown tones & soft vibes", ImagePath: "Queen/Thuu Thuu Han Wai.png"},
		{Name: "Zwe Sandar Htet", Batch: "HND-57", Bio: "Born to be a princess, destined to be a queen.", ImagePath: "Queen/Zwe Sandar Htet.png"},
	}

	queens := make([]Queen, len(rows))
	for i, row := range rows {
		queens[i] = Queen{Candidate: row}
	}
	return queens
}

func seedLanterns() []Lantern {
	rows := []Candidate{
		{Name: "Aurelia light", Batch: "GED-1", Bio: "a handmade soft pink lantern, inspired by the gentle beauty of the sea. Its ribbons and lights create a dreamy glow, symbolizing hope and creativity for the Thadingyut festival.", ImagePath: "Lantern/ged-1.jpg"},
		{Name: "ကြာပန်းမီးပုံလေး", Batch: "GUF-91", Bio: "ကျွန်မတို့သုငယ်ချက်းသုံးယောက်ကဘုရားကိုကပ်လှူချင်သောဆန္ဒကိုဦးတည်ကာတီထွင်ခဲ့ကြခြင်းဖြစ်ပါတယ်။", ImagePath: "Lantern/guf-91.jpg"},
		{Name: "'Water Lantern'", Batch: "GUF-92", Bio: "'May our Lantern Flow in the river with the light of hopes and carry our dream'", ImagePath: "Lantern/guf-92.jpg"},
		{Name: "'Fairybells of Moonlight' Lantern", Batch: "HND-6,7", Bio: "လမင်းရဲ့အလင်းကို ခေါင်းလောင်းပန်းလေးတစ်ပွင့်ထဲထည့်ထားသကဲ့သို့ ဖန်းတီးပေးထားပါတယ်ရှင့်", ImagePath: "Lantern/hnd-6,7.jpg"},
		{Name: "Lantern of Thadingyut", Batch: "HND-60", Bio: "မြန်မာ့ဓ‌လေ့နဲ့ သီတင်းကျွတ်‌နွေးထွေးမှုကို ပေါင်းစပ်ဖန်တီးထားတဲ့ မြန်မာ့သီတင်းကျွတ်မီးပုံးလး ပါရှင့်", ImagePath: "Lantern/hnd-60.jpg"},
		{Name: "ပဒုမ္မာဒီပ", Batch: "HND-65", Bio: "ကြာပန်းအလင်းက သန့်ရှင်းစင်ကြယ်တဲ့ အလင်းတရားကို သတိပေးနေတယ် လို့ ကိုယ်စားပြုပါတယ်", ImagePath: "Lantern/hnd-65.jpg"},
		{Name: "HND-69", Batch: "HND-69", Bio: "မီးပုံးလေးကို မီးဖွင့်ဖို့မမေ့ပါနဲ့ မှောင်နေတာလေးက မင်းမရှိတဲ့ ဘဝနဲ့တူလို့ပါ ကိုရယ်", ImagePath: "Lantern/hnd-69.jpg"},
		{Name: "Floral", Batch: "LV3-B39", Bio: "Floral Elegance for every occasion", ImagePath: "Lantern/lv3-b39.jpg"},
		{Name: "The Beauty of nature", Batch: "LV3-B42", Bio: "နွံထဲကနေတိုးထွက်ပြီးပွင့်ဖူးရတာတောင် ညစ်ပေကျံမနေဘဲ အလှပဆုံးပွင့်လန်းကြတာကြောင့်ဖြစ်ပါတယ်ရှင့်", ImagePath: "Lantern/lv3-b42.jpg"},
		{Name: "luminous lantern", Batch: "PreIG-B5", Bio: "နှစ်ပါးပေါင်းသွားတဲ့ မီးပုံးအလင်းတွေက လူ့စိတ်ထဲမှာရှိတဲ့ အမှောင်တိမ်တွေကို ဖယ်ရှားပေးသလို သီတင်းကျွတ်ညကို မေတ္တာနဲ့ ငြိမ်းချမ်းမှုအလင်းဖြင့် အလှဆင်ပေးနေပါတယ်", ImagePath: "Lantern/preIG-b5.jpg"},
	}

	lanterns := make([]Lantern, len(rows))
	for i, row := range rows {
		lanterns[i] = Lantern{Candidate: row}
	}
	return lanterns
}
