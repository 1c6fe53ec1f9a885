package texts

import "github.com/verte-zerg/swifttype/internal/model"

var englishSentences = []string{
	"The quick brown fox jumps over the lazy dog. This classic sentence contains every letter of the alphabet at least once, making it a favorite for typing practice and font testing.",
	"Programming is not just about writing code; it is about solving problems and creating efficient solutions that can make a difference in the world of technology.",
	"Success is not final, failure is not fatal: it is the courage to continue that counts. Winston Churchill's words remind us that persistence is key to any endeavor.",
	"In the middle of every difficulty lies opportunity. Albert Einstein believed that challenges are often the gateway to new discoveries and personal growth.",
	"The only way to do great work is to love what you do. If you haven't found it yet, keep looking. Don't settle. Steve Jobs encouraged everyone to find their passion.",
	"Nature always wears the colors of the spirit. Ralph Waldo Emerson's observation suggests that our perception of the world is deeply influenced by our internal state.",
	"To be yourself in a world that is constantly trying to make you something else is the greatest accomplishment. Authenticity is a rare and valuable trait.",
	"The future belongs to those who believe in the beauty of their dreams. Eleanor Roosevelt's inspiring message reminds us to hold onto our aspirations with conviction.",
}

var englishParagraphs = []string{
	"The digital revolution has fundamentally altered the way we communicate, work, and interact with the world around us. From the early days of simple text-based messages to the complex, high-speed networks of today, technology has bridged geographical gaps and brought information to our fingertips. However, this rapid advancement also brings challenges, such as the need for digital literacy and the protection of personal privacy in an increasingly connected society. As we look to the future, the integration of artificial intelligence and machine learning promises even more profound changes, potentially reshaping industries and creating new opportunities for innovation and collaboration across all sectors of global economy.",
	"Environmental conservation has become one of the most pressing issues of the twenty-first century. As global temperatures rise and natural habitats are destroyed, the urgency to protect our planet's biodiversity has never been greater. Sustainable practices, such as reducing carbon emissions, transitioning to renewable energy sources, and minimizing waste, are essential steps in mitigating the effects of climate change. Furthermore, individual actions, combined with international cooperation and policy changes, can lead to significant improvements in the health of our ecosystems. It is our collective responsibility to ensure that future generations inherit a world that is vibrant, healthy, and capable of supporting all forms of life.",
	"The study of history provides us with a unique lens through which we can understand the present and anticipate the future. By examining the successes and failures of past civilizations, we gain valuable insights into human nature, social structures, and the consequences of political and economic decisions. History is not merely a collection of dates and names; it is a narrative of human struggle, achievement, and evolution. Understanding our roots allows us to appreciate the cultural diversity that defines our world today and fosters a sense of global citizenship. As we navigate the complexities of modern life, the lessons learned from history serve as a guide, helping us to avoid past mistakes and build a more just and equitable society for everyone.",
}

var bengaliSentences = []string{
	"আমাদের দেশ সোনার বাংলাদেশ। এদেশের প্রকৃতি অত্যন্ত সুন্দর এবং বৈচিত্র্যময়। ষড়ঋতুর এই দেশে প্রতিটি ঋতুই তার নিজস্ব রূপ নিয়ে হাজির হয়।",
	"শিক্ষা জাতির মেরুদণ্ড। সুশিক্ষিত জাতি ছাড়া কোনো দেশ উন্নতি করতে পারে না। তাই আমাদের সবাইকে সুশিক্ষায় শিক্ষিত হতে হবে এবং দেশের উন্নয়নে অবদান রাখতে হবে।",
	"বই মানুষের শ্রেষ্ঠ বন্ধু। একটি ভালো বই মানুষের জীবন বদলে দিতে পারে। জ্ঞানের আলো ছড়িয়ে দিতে বইয়ের কোনো বিকল্প নেই।",
	"পরিশ্রম সৌভাগ্যের প্রসূতি। যে জাতি যত বেশি পরিশ্রমী, সে জাতি তত বেশি উন্নত। অলসতা মানুষকে ধ্বংসের দিকে নিয়ে যায়।",
}

var bengaliParagraphs = []string{
	"বাংলা সাহিত্যের ইতিহাস অত্যন্ত প্রাচীন এবং সমৃদ্ধ। চর্যাপদ থেকে শুরু করে আধুনিক কবিতা ও কথাসাহিত্য পর্যন্ত বাংলার সাহিত্যিকরা বিশ্ব দরবারে নিজেদের স্থান করে নিয়েছেন। রবীন্দ্রনাথ ঠাকুর, কাজী নজরুল ইসলাম, জীবনানন্দ দাশের মতো কালজয়ী লেখকদের সৃষ্টি আমাদের সংস্কৃতির অবিচ্ছেদ্য অংশ। তাঁদের লেখনী আমাদের দেশপ্রেম, মানবতা এবং প্রকৃতির প্রতি ভালোবাসাকে জাগ্রত করে। বর্তমান প্রজন্মের পাঠকদের কাছেও এই সাহিত্য সমানভাবে জনপ্রিয় এবং অনুপ্রেরণার উৎস হিসেবে কাজ করে।",
	"বাংলাদেশের প্রাকৃতিক সৌন্দর্য পর্যটকদের কাছে এক বড় আকর্ষণ। বিশ্বের দীর্ঘতম সমুদ্র সৈকত কক্সবাজার থেকে শুরু করে সুন্দরবনের ম্যানগ্রোভ বন পর্যন্ত এদেশের প্রতিটি কোণ যেন শিল্পীর তুলিতে আঁকা। পাহাড়, নদী আর সবুজের সমারোহে ঘেরা এই ভূখণ্ডে ভ্রমণের অভিজ্ঞতা সারাজীবন মনে রাখার মতো। পর্যটন শিল্পের উন্নয়ন দেশের অর্থনীতিতে গুরুত্বপূর্ণ ভূমিকা রাখতে পারে। তাই আমাদের উচিত এই প্রাকৃতিক সম্পদকে রক্ষা করা এবং বিশ্ববাসীর কাছে এর সৌন্দর্য তুলে ধরা।",
}

// Builtin returns the bundled text pools.
func Builtin() Pools {
	return Pools{
		{Lang: model.English, Mode: model.Sentence}:  clone(englishSentences),
		{Lang: model.English, Mode: model.Paragraph}: clone(englishParagraphs),
		{Lang: model.Bengali, Mode: model.Sentence}:  clone(bengaliSentences),
		{Lang: model.Bengali, Mode: model.Paragraph}: clone(bengaliParagraphs),
	}
}

func clone(in []string) []string {
	return append([]string(nil), in...)
}
